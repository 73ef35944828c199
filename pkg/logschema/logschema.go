package logschema

// Beacon wire schema. A beacon carries a positional JSON array whose element i is
// the value of FieldOrder[i]. The first element is always the literal SchemaID so
// collectors can tell field-list revisions apart.
//
// Revision history:
//   - lh.v1: FieldOrder without the marker, details and uniqueId.
//   - lh.v2: marker prepended, details and uniqueId appended.
const (
	SchemaID = "lh.v2"

	// QueryParam is the beacon URL query parameter holding the encoded payload.
	QueryParam = "d"

	FieldSchemaVersion      = "schemaVersion"
	FieldTimestamp          = "timestamp"
	FieldEventName          = "eventName"
	FieldContext            = "context"
	FieldVendor             = "vendor"
	FieldPlatform           = "platform"
	FieldUserAgent          = "userAgent"
	FieldURL                = "url"
	FieldApplicationVersion = "applicationVersion"
	FieldEmail              = "email"
	FieldTenantID           = "tenantId"
	FieldApplicationName    = "applicationName"
	FieldDisplayName        = "displayName"
	FieldTimezone           = "timezone"
	FieldUserID             = "userId"
	FieldUserAgentShort     = "userAgentShort"
	FieldLogLevel           = "logLevel"
	FieldInstanceID         = "instanceId"
	FieldSequenceNumber     = "sequenceNumber"
	FieldDetails            = "details"
	FieldUniqueID           = "uniqueId"
)

// FieldOrder is the positional layout of SchemaID. Never reorder: append new fields
// and bump SchemaID instead.
var FieldOrder = []string{
	FieldSchemaVersion,
	FieldTimestamp,
	FieldEventName,
	FieldContext,
	FieldVendor,
	FieldPlatform,
	FieldUserAgent,
	FieldURL,
	FieldApplicationVersion,
	FieldEmail,
	FieldTenantID,
	FieldApplicationName,
	FieldDisplayName,
	FieldTimezone,
	FieldUserID,
	FieldUserAgentShort,
	FieldLogLevel,
	FieldInstanceID,
	FieldSequenceNumber,
	FieldDetails,
	FieldUniqueID,
}

// MetadataFields are the payload fields sourced from client configuration.
var MetadataFields = []string{
	FieldApplicationName,
	FieldApplicationVersion,
	FieldEmail,
	FieldDisplayName,
	FieldUserID,
	FieldTenantID,
	FieldUserAgentShort,
	FieldTimezone,
	FieldPlatform,
	FieldVendor,
	FieldUserAgent,
}

// Diagnostic log keys used by the internal logger.
const (
	LogFieldTimestamp = "ts"
	LogFieldLevel     = "level"
	LogFieldMessage   = "msg"
	LogFieldLogger    = "logger"
	LogFieldCaller    = "caller"
	LogFieldStack     = "stack"

	LogFieldComponent = "component"
	LogFieldEvent     = "event"
	LogFieldError     = "error"
)

// LogRecord is a generic map representation of a decoded beacon, keyed by field name.
type LogRecord map[string]interface{}
