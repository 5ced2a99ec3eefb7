package logger

// NewNop returns a Logger that discards every entry.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Warn(string, ...Field)  {}

func (n nopLogger) With(...Field) Logger {
	return n
}
