package types

// Payload is the fixed-schema record assembled for every emitted event.
// Its wire layout is positional; see logschema.FieldOrder.
type Payload struct {
	SchemaVersion  string
	Timestamp      int64 // milliseconds since the Unix epoch
	EventName      string
	Context        string
	Details        string // compact JSON text of the merged details mapping
	URL            *string
	LogLevel       string
	InstanceID     string
	SequenceNumber uint64
	UniqueID       string

	ApplicationName    *string
	ApplicationVersion *string
	Email              *string
	DisplayName        *string
	UserID             *string
	TenantID           *string
	UserAgentShort     *string
	Timezone           *string
	Platform           *string
	Vendor             *string
	UserAgent          *string
}

// Hook is a lifecycle callback invoked immediately before or after a beacon is dispatched.
// A before hook may modify the payload prior to encoding. Returned errors are handed back
// unchanged to the caller of the log call.
type Hook func(*Payload) error

// Metadata is the persistent session and application information copied into every payload.
// A nil field is reported as null.
type Metadata struct {
	ApplicationName    *string
	ApplicationVersion *string
	Email              *string
	DisplayName        *string
	UserID             *string
	TenantID           *string
	UserAgentShort     *string
	Timezone           *string
	Platform           *string
	Vendor             *string
	UserAgent          *string
	Details            map[string]any
}

// Clone returns a copy of m that shares no mutable state with it.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Details != nil {
		out.Details = make(map[string]any, len(m.Details))
		for k, v := range m.Details {
			out.Details[k] = v
		}
	}
	return out
}
