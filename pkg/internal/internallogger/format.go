package internallogger

import (
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/logschema"
	"go.uber.org/zap/zapcore"
)

func standardEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        logschema.LogFieldTimestamp,
		LevelKey:       logschema.LogFieldLevel,
		NameKey:        logschema.LogFieldLogger,
		CallerKey:      logschema.LogFieldCaller,
		MessageKey:     logschema.LogFieldMessage,
		StacktraceKey:  logschema.LogFieldStack,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     encodeRFC3339NanoUTC,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func encodeRFC3339NanoUTC(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}
