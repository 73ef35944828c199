package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts the zap configuration before the logger is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter writing JSON lines to stderr.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 1

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	encConfig := standardEncoderConfig()
	if config.Development {
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stderr), atomicLevel),
		baseFields:  fieldsFromMap(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    !config.DisableCaller,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
