package logging

// nopLogger discards everything. Used by tests and anywhere a Logger is
// required but output is unwanted.
type nopLogger struct{}

// NewNop returns a logger that discards all entries.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Sync() error            { return nil }
