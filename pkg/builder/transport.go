package builder

import (
	"context"
	"net/http"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/transport"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// DefaultTransportTimeout bounds a single beacon request.
const DefaultTransportTimeout = transport.DefaultTimeout

// NewHTTPBeacon creates the fire-and-forget GET transport.
func NewHTTPBeacon(ctx context.Context, options ...types.Option[types.BeaconTransport]) types.BeaconTransport {
	return transport.NewHTTPBeacon(ctx, options...)
}

func HTTPBeaconWithTimeout(timeout time.Duration) types.Option[types.BeaconTransport] {
	return transport.WithTimeout(timeout)
}

func HTTPBeaconWithHTTPClient(client *http.Client) types.Option[types.BeaconTransport] {
	return transport.WithHTTPClient(client)
}

func HTTPBeaconWithLogger(l ...types.Logger) types.Option[types.BeaconTransport] {
	return transport.WithLogger(l...)
}

// HTTPBeaconWithTLSPinning only accepts servers presenting the PEM certificate at certPath.
func HTTPBeaconWithTLSPinning(certPath string) types.Option[types.BeaconTransport] {
	return transport.WithTLSPinning(certPath)
}

func HTTPBeaconWithComponentMetadata(name string, id string) types.Option[types.BeaconTransport] {
	return transport.WithComponentMetadata(name, id)
}

// NewRecorder returns an in-memory transport that keeps every beacon URL.
func NewRecorder() *transport.Recorder {
	return transport.NewRecorder()
}

// EncodedPayload extracts the still escaped payload from a beacon URL.
func EncodedPayload(url string) (string, bool) {
	return transport.EncodedPayload(url)
}
