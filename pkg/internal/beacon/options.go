package beacon

import (
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// WithLogLevel sets the severity threshold by name. An empty name means "info".
func WithLogLevel(level string) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetLogLevel(level)
	}
}

// WithEndpoint sets the URL beacons are sent to.
func WithEndpoint(endpoint string) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetEndpoint(endpoint)
	}
}

// WithBeforeLog installs the hook run after assembly and before encoding.
func WithBeforeLog(hook types.Hook) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetBeforeLog(hook)
	}
}

// WithAfterLog installs the hook run after the beacon was handed to the transport.
func WithAfterLog(hook types.Hook) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetAfterLog(hook)
	}
}

func WithApplicationName(name string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldApplicationName, name)
}

func WithApplicationVersion(version string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldApplicationVersion, version)
}

func WithEmail(email string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldEmail, email)
}

func WithDisplayName(name string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldDisplayName, name)
}

func WithUserID(id string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldUserID, id)
}

func WithTenantID(id string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldTenantID, id)
}

func WithUserAgentShort(ua string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldUserAgentShort, ua)
}

// WithTimezone overrides the host timezone. Empty values are ignored, as for
// WithPlatform, WithVendor and WithUserAgent.
func WithTimezone(tz string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldTimezone, tz)
}

func WithPlatform(platform string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldPlatform, platform)
}

func WithVendor(vendor string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldVendor, vendor)
}

func WithUserAgent(ua string) types.Option[types.Beacon] {
	return withMetadata(logschema.FieldUserAgent, ua)
}

// WithDetails merges details into the configured details mapping.
func WithDetails(details map[string]any) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.MergeDetails(details)
	}
}

// WithLogger attaches ambient loggers for the client's own diagnostics.
func WithLogger(l ...types.Logger) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.ConnectLogger(l...)
	}
}

// WithTransport replaces the transport beacons are dispatched through.
func WithTransport(t types.Transport) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.ConnectTransport(t)
	}
}

// WithComponentMetadata names the client in ambient log lines.
func WithComponentMetadata(name string, id string) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetComponentMetadata(name, id)
	}
}

func withMetadata(field, value string) types.Option[types.Beacon] {
	return func(b types.Beacon) {
		b.SetMetadataField(field, value)
	}
}
