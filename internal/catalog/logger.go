package catalog

// Logger is the informational sink catalogs and builders report to.
// *slog.Logger satisfies it. Implementations must not block; a failing
// sink never affects catalog state.
type Logger interface {
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}

// logInfo forwards to l and swallows any panic raised by the sink.
func logInfo(l Logger, msg string, args ...any) {
	defer func() { _ = recover() }()
	l.Info(msg, args...)
}
