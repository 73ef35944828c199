package transport

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(client *http.Client) types.Option[types.BeaconTransport] {
	return func(t types.BeaconTransport) {
		t.SetHTTPClient(client)
	}
}

// WithLogger attaches loggers to the transport.
func WithLogger(l ...types.Logger) types.Option[types.BeaconTransport] {
	return func(t types.BeaconTransport) {
		t.ConnectLogger(l...)
	}
}

// WithTimeout sets the per-beacon timeout.
func WithTimeout(timeout time.Duration) types.Option[types.BeaconTransport] {
	return func(t types.BeaconTransport) {
		t.SetTimeout(timeout)
	}
}

// WithTLSPinning enables TLS pinning with the provided certificate path.
func WithTLSPinning(certPath string) types.Option[types.BeaconTransport] {
	return func(t types.BeaconTransport) {
		t.SetTlsPinnedCertificate(certPath)
	}
}

// WithComponentMetadata overrides the transport name and id.
func WithComponentMetadata(name string, id string) types.Option[types.BeaconTransport] {
	return func(t types.BeaconTransport) {
		t.SetComponentMetadata(name, id)
	}
}
