package transport

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

// NotifyLoggers sends a message to all attached loggers.
func (t *HTTPBeacon) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range t.snapshotLoggers() {
		if logger == nil {
			continue
		}
		if logger.GetLevel() > level {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		}
	}
}
