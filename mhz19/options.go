package mhz19

// Config holds the sensor driver configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration: no logger, no other
// behavior. The driver performs no retries, imposes no timeouts and
// adds no delays; those policies belong to the caller.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Sensor.
type Option func(*Config)

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	sensor := mhz19.New(port, mhz19.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with the standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	sensor := mhz19.New(port, mhz19.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
