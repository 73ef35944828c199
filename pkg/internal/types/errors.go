package types

import "errors"

var (
	ErrEmptyEvent       = errors.New("event must not be empty")
	ErrInvalidDetails   = errors.New("details must be serializable to JSON")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrUnknownSeverity  = errors.New("unknown severity name")
	ErrNoEndpoint       = errors.New("we need a configured log endpoint")
	ErrTooManyLogs      = errors.New("too many logs")
	ErrInvalidTimestamp = errors.New("host clock outside the range of event ids")
	ErrSchemaMismatch   = errors.New("payload schema version mismatch")
	ErrMalformedBeacon  = errors.New("malformed beacon payload")
)
