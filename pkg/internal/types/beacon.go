package types

// Beacon is the telemetry client: configuration, emission and capture.
type Beacon interface {
	// Configure applies options over the current state. Fields an option does not
	// touch keep their previous values.
	Configure(options ...Option[Beacon])

	SetLogLevel(level string)
	SetEndpoint(endpoint string)
	SetBeforeLog(hook Hook)
	SetAfterLog(hook Hook)
	// SetMetadataField sets one of the logschema metadata fields. Unknown names are ignored.
	SetMetadataField(field string, value string)
	MergeDetails(details map[string]any)
	ConnectLogger(...Logger)
	ConnectTransport(Transport)

	Log(event, context string, details map[string]any, severity Severity) error
	Trace(event, context string, details map[string]any) error
	Debug(event, context string, details map[string]any) error
	Info(event, context string, details map[string]any) error
	Warn(event, context string, details map[string]any) error
	Error(event, context string, details map[string]any) error

	TrackClicks()
	TrackExceptions()
	HandleClick(ClickEvent)
	HandleError(ErrorEvent)
	ReportPanic()

	Endpoint() string
	Threshold() Severity
	Metadata() Metadata
	InstanceID() string
	SequenceNumber() uint64
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
