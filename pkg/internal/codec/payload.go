package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// payloadField binds a logschema field name to its slot in types.Payload.
type payloadField struct {
	get func(*types.Payload) any
	set func(*types.Payload, json.RawMessage) error
}

func field[V any](slot func(*types.Payload) *V) payloadField {
	return payloadField{
		get: func(p *types.Payload) any { return *slot(p) },
		set: func(p *types.Payload, raw json.RawMessage) error { return json.Unmarshal(raw, slot(p)) },
	}
}

var payloadFields = map[string]payloadField{
	logschema.FieldSchemaVersion:      field(func(p *types.Payload) *string { return &p.SchemaVersion }),
	logschema.FieldTimestamp:          field(func(p *types.Payload) *int64 { return &p.Timestamp }),
	logschema.FieldEventName:          field(func(p *types.Payload) *string { return &p.EventName }),
	logschema.FieldContext:            field(func(p *types.Payload) *string { return &p.Context }),
	logschema.FieldVendor:             field(func(p *types.Payload) **string { return &p.Vendor }),
	logschema.FieldPlatform:           field(func(p *types.Payload) **string { return &p.Platform }),
	logschema.FieldUserAgent:          field(func(p *types.Payload) **string { return &p.UserAgent }),
	logschema.FieldURL:                field(func(p *types.Payload) **string { return &p.URL }),
	logschema.FieldApplicationVersion: field(func(p *types.Payload) **string { return &p.ApplicationVersion }),
	logschema.FieldEmail:              field(func(p *types.Payload) **string { return &p.Email }),
	logschema.FieldTenantID:           field(func(p *types.Payload) **string { return &p.TenantID }),
	logschema.FieldApplicationName:    field(func(p *types.Payload) **string { return &p.ApplicationName }),
	logschema.FieldDisplayName:        field(func(p *types.Payload) **string { return &p.DisplayName }),
	logschema.FieldTimezone:           field(func(p *types.Payload) **string { return &p.Timezone }),
	logschema.FieldUserID:             field(func(p *types.Payload) **string { return &p.UserID }),
	logschema.FieldUserAgentShort:     field(func(p *types.Payload) **string { return &p.UserAgentShort }),
	logschema.FieldLogLevel:           field(func(p *types.Payload) *string { return &p.LogLevel }),
	logschema.FieldInstanceID:         field(func(p *types.Payload) *string { return &p.InstanceID }),
	logschema.FieldSequenceNumber:     field(func(p *types.Payload) *uint64 { return &p.SequenceNumber }),
	logschema.FieldDetails:            field(func(p *types.Payload) *string { return &p.Details }),
	logschema.FieldUniqueID:           field(func(p *types.Payload) *string { return &p.UniqueID }),
}

func init() {
	for _, name := range logschema.FieldOrder {
		if _, ok := payloadFields[name]; !ok {
			panic(fmt.Sprintf("codec: no payload slot for schema field %q", name))
		}
	}
}

// Positional projects p onto logschema.FieldOrder.
func Positional(p types.Payload) []any {
	values := make([]any, len(logschema.FieldOrder))
	for i, name := range logschema.FieldOrder {
		values[i] = payloadFields[name].get(&p)
	}
	return values
}

// MarshalCompact serializes v as compact JSON without HTML escaping.
func MarshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodePayload produces the value of the beacon query parameter for p.
func EncodePayload(p types.Payload) (string, error) {
	data, err := MarshalCompact(Positional(p))
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return Escape(string(data)), nil
}

// DecodePayload reverses EncodePayload. Missing trailing values decode as
// zero or null, extra trailing values are ignored.
func DecodePayload(encoded string) (types.Payload, error) {
	var p types.Payload

	var values []json.RawMessage
	if err := json.Unmarshal([]byte(Unescape(encoded)), &values); err != nil {
		return p, fmt.Errorf("%w: %v", types.ErrMalformedBeacon, err)
	}

	for i, name := range logschema.FieldOrder {
		if i >= len(values) {
			break
		}
		if err := payloadFields[name].set(&p, values[i]); err != nil {
			return types.Payload{}, fmt.Errorf("%w: field %s: %v", types.ErrMalformedBeacon, name, err)
		}
	}

	if p.SchemaVersion != logschema.SchemaID {
		return types.Payload{}, fmt.Errorf("%w: got %q, want %q", types.ErrSchemaMismatch, p.SchemaVersion, logschema.SchemaID)
	}
	return p, nil
}

// Record converts p into a map keyed by schema field name.
func Record(p types.Payload) logschema.LogRecord {
	values := Positional(p)
	record := make(logschema.LogRecord, len(values))
	for i, name := range logschema.FieldOrder {
		record[name] = values[i]
	}
	return record
}
