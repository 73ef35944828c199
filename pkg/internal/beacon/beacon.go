// Package beacon implements the telemetry client: it holds configuration and session
// metadata, assembles fixed-schema payloads for emitted events, hands encoded beacon
// URLs to a transport and captures clicks and uncaught errors from its host.
//
// Emission is synchronous on the calling goroutine. Configuration is guarded by a
// mutex that is never held while hooks or the transport run, so hooks may emit
// further events; those share the instance's sequence counter.
package beacon

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/joeydtaylor/loggerhead/pkg/internal/host"
	"github.com/joeydtaylor/loggerhead/pkg/internal/transport"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

var _ types.Beacon = (*Beacon)(nil)

// MaxEmissions is the flood guard: once this many events were numbered on one
// instance, every further emission fails with types.ErrTooManyLogs.
const MaxEmissions = 10000

// Beacon is the types.Beacon implementation.
type Beacon struct {
	componentMetadata types.ComponentMetadata
	host              types.Host

	configLock   sync.Mutex
	threshold    types.Severity
	endpoint     string
	beforeLog    types.Hook
	afterLog     types.Hook
	metadata     types.Metadata
	transport    types.Transport
	// ownTransport is the default transport created by NewBeacon, nil when the caller supplied one.
	ownTransport types.BeaconTransport

	loggers     []types.Logger
	loggersLock sync.Mutex

	instanceID string
	sequence   atomic.Uint64

	captureLock           sync.Mutex
	clicksInitialized     bool
	exceptionsInitialized bool
}

// NewBeacon creates a client bound to h. A nil host behaves like an empty host.New().
// Navigator and timezone metadata default from the host; options are then applied as
// one Configure call. Without WithTransport, beacons go out over a transport.HTTPBeacon.
func NewBeacon(h types.Host, options ...types.Option[types.Beacon]) *Beacon {
	if h == nil {
		h = host.New()
	}

	b := &Beacon{
		componentMetadata: types.ComponentMetadata{
			ID:   uuid.NewString(),
			Type: "BEACON",
		},
		host:       h,
		threshold:  types.SeverityTrace,
		loggers:    make([]types.Logger, 0),
		instanceID: uuid.NewString(),
	}

	nav := h.Navigator()
	b.metadata.Timezone = nonEmpty(h.Timezone())
	b.metadata.Platform = nonEmpty(nav.Platform)
	b.metadata.Vendor = nonEmpty(nav.Vendor)
	b.metadata.UserAgent = nonEmpty(nav.UserAgent)

	b.Configure(options...)

	b.configLock.Lock()
	if b.transport == nil {
		b.ownTransport = transport.NewHTTPBeacon(context.Background(), transport.WithLogger(b.snapshotLoggers()...))
		b.transport = b.ownTransport
	}
	b.configLock.Unlock()

	b.NotifyLoggers(types.DebugLevel, "Beacon created",
		"component", b.componentMetadata,
		"instanceId", b.instanceID,
	)

	return b
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return types.StringPtr(s)
}
