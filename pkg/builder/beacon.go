package builder

import (
	"github.com/joeydtaylor/loggerhead/pkg/internal/beacon"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// MaxEmissions is the number of events one beacon numbers before refusing more.
const MaxEmissions = beacon.MaxEmissions

// NewBeacon creates a telemetry client for the given host.
func NewBeacon(host types.Host, options ...types.Option[types.Beacon]) types.Beacon {
	return beacon.NewBeacon(host, options...)
}

// BeaconWithLogLevel sets the severity threshold by name ("trace" ... "error").
func BeaconWithLogLevel(level string) types.Option[types.Beacon] {
	return beacon.WithLogLevel(level)
}

// BeaconWithEndpoint sets the collector URL.
func BeaconWithEndpoint(endpoint string) types.Option[types.Beacon] {
	return beacon.WithEndpoint(endpoint)
}

// BeaconWithBeforeLog installs a hook run on the assembled payload before it is encoded.
func BeaconWithBeforeLog(hook types.Hook) types.Option[types.Beacon] {
	return beacon.WithBeforeLog(hook)
}

// BeaconWithAfterLog installs a hook run after the beacon was dispatched.
func BeaconWithAfterLog(hook types.Hook) types.Option[types.Beacon] {
	return beacon.WithAfterLog(hook)
}

func BeaconWithApplicationName(name string) types.Option[types.Beacon] {
	return beacon.WithApplicationName(name)
}

func BeaconWithApplicationVersion(version string) types.Option[types.Beacon] {
	return beacon.WithApplicationVersion(version)
}

func BeaconWithEmail(email string) types.Option[types.Beacon] {
	return beacon.WithEmail(email)
}

func BeaconWithDisplayName(name string) types.Option[types.Beacon] {
	return beacon.WithDisplayName(name)
}

func BeaconWithUserID(id string) types.Option[types.Beacon] {
	return beacon.WithUserID(id)
}

func BeaconWithTenantID(id string) types.Option[types.Beacon] {
	return beacon.WithTenantID(id)
}

func BeaconWithUserAgentShort(ua string) types.Option[types.Beacon] {
	return beacon.WithUserAgentShort(ua)
}

func BeaconWithTimezone(tz string) types.Option[types.Beacon] {
	return beacon.WithTimezone(tz)
}

func BeaconWithPlatform(platform string) types.Option[types.Beacon] {
	return beacon.WithPlatform(platform)
}

func BeaconWithVendor(vendor string) types.Option[types.Beacon] {
	return beacon.WithVendor(vendor)
}

func BeaconWithUserAgent(ua string) types.Option[types.Beacon] {
	return beacon.WithUserAgent(ua)
}

// BeaconWithDetails merges details into every payload's details mapping.
func BeaconWithDetails(details map[string]any) types.Option[types.Beacon] {
	return beacon.WithDetails(details)
}

// BeaconWithLogger adds loggers for the beacon's own diagnostics.
func BeaconWithLogger(l ...types.Logger) types.Option[types.Beacon] {
	return beacon.WithLogger(l...)
}

// BeaconWithTransport replaces the default HTTP transport.
func BeaconWithTransport(t types.Transport) types.Option[types.Beacon] {
	return beacon.WithTransport(t)
}

// BeaconWithComponentMetadata adds component metadata overrides.
func BeaconWithComponentMetadata(name string, id string) types.Option[types.Beacon] {
	return beacon.WithComponentMetadata(name, id)
}
