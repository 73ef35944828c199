package types

// ComponentMetadata defines the identifying information attached to every component of the client.
// It shows up in ambient log lines so events from several beacons in one process can be told apart.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, e.g. "BEACON" or "HTTP_BEACON_TRANSPORT".
	Name string // Human-readable name for the component.
}

// Option defines a configuration option function applicable to any component T.
type Option[T any] func(T)

// StringPtr returns a pointer to s. Metadata fields use nil for "not configured".
func StringPtr(s string) *string {
	return &s
}
