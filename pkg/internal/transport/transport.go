// Package transport dispatches beacon URLs as fire-and-forget HTTP GET requests,
// the server-side equivalent of assigning an image source in a page.
package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

const (
	DefaultTimeout = 10 * time.Second
	// maxDrainBytes bounds how much of a response body is read before the connection is released.
	maxDrainBytes = 64 << 10
)

// HTTPBeacon is a types.BeaconTransport backed by net/http.
type HTTPBeacon struct {
	componentMetadata types.ComponentMetadata
	ctx               context.Context
	configLock        sync.Mutex
	httpClient        *http.Client
	timeout           time.Duration
	loggers           []types.Logger
	loggersLock       sync.Mutex
	inflight          sync.WaitGroup
	pinnedCert        []byte
	pinEnabled        bool
}

// NewHTTPBeacon creates a transport. Beacons in flight are abandoned when ctx is cancelled.
func NewHTTPBeacon(ctx context.Context, options ...types.Option[types.BeaconTransport]) *HTTPBeacon {
	if ctx == nil {
		ctx = context.Background()
	}

	t := &HTTPBeacon{
		ctx: ctx,
		componentMetadata: types.ComponentMetadata{
			ID:   uuid.NewString(),
			Type: "HTTP_BEACON_TRANSPORT",
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
		timeout:    DefaultTimeout,
		loggers:    make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}

	return t
}
