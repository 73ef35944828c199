package beacon

import (
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// Configure applies options in order over the current state.
func (b *Beacon) Configure(options ...types.Option[types.Beacon]) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
}

// SetLogLevel sets the threshold by severity name. Unknown names fall back to info.
func (b *Beacon) SetLogLevel(level string) {
	threshold := types.SeverityInfo
	if level != "" {
		parsed, err := types.ParseSeverity(level)
		if err != nil {
			b.NotifyLoggers(types.WarnLevel, "Unknown log level, using info",
				"component", b.GetComponentMetadata(),
				"level", level,
			)
		}
		threshold = parsed
	}

	b.configLock.Lock()
	b.threshold = threshold
	b.configLock.Unlock()
}

func (b *Beacon) SetEndpoint(endpoint string) {
	b.configLock.Lock()
	b.endpoint = endpoint
	b.configLock.Unlock()
}

// SetBeforeLog replaces the before hook. A nil hook keeps the current one.
func (b *Beacon) SetBeforeLog(hook types.Hook) {
	if hook == nil {
		return
	}
	b.configLock.Lock()
	b.beforeLog = hook
	b.configLock.Unlock()
}

// SetAfterLog replaces the after hook. A nil hook keeps the current one.
func (b *Beacon) SetAfterLog(hook types.Hook) {
	if hook == nil {
		return
	}
	b.configLock.Lock()
	b.afterLog = hook
	b.configLock.Unlock()
}

// SetMetadataField sets one metadata field by its logschema name. Host-derived
// fields keep their value when given "".
func (b *Beacon) SetMetadataField(field string, value string) {
	b.configLock.Lock()
	defer b.configLock.Unlock()

	slot := metadataSlot(&b.metadata, field)
	if slot == nil {
		return
	}
	if value == "" && hostDerived(field) {
		return
	}
	*slot = types.StringPtr(value)
}

// MergeDetails copies details into the configured details mapping key by key.
func (b *Beacon) MergeDetails(details map[string]any) {
	if len(details) == 0 {
		return
	}
	b.configLock.Lock()
	defer b.configLock.Unlock()

	if b.metadata.Details == nil {
		b.metadata.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		b.metadata.Details[k] = v
	}
}

func (b *Beacon) SetComponentMetadata(name string, id string) {
	b.configLock.Lock()
	defer b.configLock.Unlock()
	b.componentMetadata.Name = name
	if id != "" {
		b.componentMetadata.ID = id
	}
}

func metadataSlot(m *types.Metadata, field string) **string {
	switch field {
	case logschema.FieldApplicationName:
		return &m.ApplicationName
	case logschema.FieldApplicationVersion:
		return &m.ApplicationVersion
	case logschema.FieldEmail:
		return &m.Email
	case logschema.FieldDisplayName:
		return &m.DisplayName
	case logschema.FieldUserID:
		return &m.UserID
	case logschema.FieldTenantID:
		return &m.TenantID
	case logschema.FieldUserAgentShort:
		return &m.UserAgentShort
	case logschema.FieldTimezone:
		return &m.Timezone
	case logschema.FieldPlatform:
		return &m.Platform
	case logschema.FieldVendor:
		return &m.Vendor
	case logschema.FieldUserAgent:
		return &m.UserAgent
	}
	return nil
}

func hostDerived(field string) bool {
	switch field {
	case logschema.FieldTimezone, logschema.FieldPlatform, logschema.FieldVendor, logschema.FieldUserAgent:
		return true
	}
	return false
}
