package types

// LogLevel represents the severity levels of the ambient diagnostic logger.
// It is unrelated to Severity, which classifies emitted beacon events.
type LogLevel int

// SinkType defines the type of logger sink.
type SinkType string

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

const (
	DebugLevel LogLevel = iota // DebugLevel indicates debug messages.
	InfoLevel                  // InfoLevel indicates informational messages.
	WarnLevel                  // WarnLevel indicates warning messages.
	ErrorLevel                 // ErrorLevel indicates error messages.
)

// SinkConfig defines the configuration for a logging sink.
type SinkConfig struct {
	Type   string                 // Type of sink, "file" or "stdout"
	Config map[string]interface{} // Detailed configuration specific to the sink type
}

// Logger defines the interface for diagnostic logging across the library.
type Logger interface {
	GetLevel() LogLevel                             // GetLevel returns the current logging level of the logger.
	SetLevel(LogLevel)                              // SetLevel sets the logging level of the logger.
	Debug(msg string, keysAndValues ...interface{}) // Debug logs a debug message.
	Info(msg string, keysAndValues ...interface{})  // Info logs an informational message.
	Warn(msg string, keysAndValues ...interface{})  // Warn logs a warning message.
	Error(msg string, keysAndValues ...interface{}) // Error logs an error message.
	Flush() error
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
