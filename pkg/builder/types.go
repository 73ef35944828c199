package builder

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

type (
	Beacon          = types.Beacon
	BeaconTransport = types.BeaconTransport
	Transport       = types.Transport
	TransportFunc   = types.TransportFunc
	Payload         = types.Payload
	Metadata        = types.Metadata
	Hook            = types.Hook
	Host            = types.Host
	Navigator       = types.Navigator
	Element         = types.Element
	Event           = types.Event
	ClickEvent      = types.ClickEvent
	ErrorEvent          = types.ErrorEvent
	Severity        = types.Severity
)

const (
	SeverityTrace = types.SeverityTrace
	SeverityDebug = types.SeverityDebug
	SeverityInfo  = types.SeverityInfo
	SeverityWarn  = types.SeverityWarn
	SeverityError = types.SeverityError

	ClickEventType         = types.ClickEventType
	ErrorEventType      = types.ErrorEventType
	UnhandledRejectionType = types.UnhandledRejectionType
	PanicEventType         = types.PanicEventType
)

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	return types.ParseSeverity(name)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return types.StringPtr(s)
}

// Errors returned by beacons and the payload codec. Match them with errors.Is.
var (
	ErrEmptyEvent       = types.ErrEmptyEvent
	ErrInvalidDetails   = types.ErrInvalidDetails
	ErrInvalidSeverity  = types.ErrInvalidSeverity
	ErrUnknownSeverity  = types.ErrUnknownSeverity
	ErrNoEndpoint       = types.ErrNoEndpoint
	ErrTooManyLogs      = types.ErrTooManyLogs
	ErrInvalidTimestamp = types.ErrInvalidTimestamp
	ErrSchemaMismatch   = types.ErrSchemaMismatch
	ErrMalformedBeacon  = types.ErrMalformedBeacon
)
