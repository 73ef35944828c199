package beacon

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

// NotifyLoggers sends a message to all attached loggers at or below level.
func (b *Beacon) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range b.snapshotLoggers() {
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

func (b *Beacon) snapshotLoggers() []types.Logger {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	out := make([]types.Logger, len(b.loggers))
	copy(out, b.loggers)
	return out
}
