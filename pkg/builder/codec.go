package builder

import (
	"github.com/joeydtaylor/loggerhead/pkg/internal/codec"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// EncodePayload renders p as the value of the beacon query parameter.
func EncodePayload(p types.Payload) (string, error) {
	return codec.EncodePayload(p)
}

// DecodePayload parses a beacon query parameter value back into a payload.
func DecodePayload(encoded string) (types.Payload, error) {
	return codec.DecodePayload(encoded)
}

// PayloadRecord keys a payload by schema field name.
func PayloadRecord(p types.Payload) logschema.LogRecord {
	return codec.Record(p)
}

// Escape applies the legacy URL escaping beacons are sent with.
func Escape(s string) string {
	return codec.Escape(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return codec.Unescape(s)
}

func NewHTMLDecoder() *codec.HTMLDecoder {
	return codec.NewHTMLDecoder()
}
