package logger

// Logger is the structured logging interface used throughout the
// application. Every entry is tagged with the emitting component so
// output can be filtered per subsystem.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
