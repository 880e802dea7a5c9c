package spirv

import "github.com/sirupsen/logrus"

// LogLevel is one of the four severities the emitter reports through.
type LogLevel int

// Severity levels, per spec §7: info and warning are informational or
// locally recovered; error and fatal halt the current operation, and
// fatal additionally poisons the owning Module.
const (
	LogLevelInfo LogLevel = iota
	LogLevelWarning
	LogLevelError
	LogLevelFatal
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelInfo:
		return "info"
	case LogLevelWarning:
		return "warning"
	case LogLevelError:
		return "error"
	case LogLevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Logger is the external sink collaborator a Module reports diagnostics
// through. Implementations must not panic or terminate the process; a
// fatal-level message is expected to be surfaced, not acted on, by the
// logger itself — poisoning the Module is the caller's responsibility.
type Logger interface {
	Log(level LogLevel, msg string)
}

// logrusLogger adapts a *logrus.Logger to the Logger interface.
type logrusLogger struct {
	entry *logrus.Logger
}

// NewLogrusLogger returns a Logger backed by logrus, using the given
// logger or logrus.StandardLogger() if nil.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: l}
}

func (l *logrusLogger) Log(level LogLevel, msg string) {
	// logrus.Logger.Log never calls os.Exit (unlike the package-level
	// logrus.Fatal helpers) — required so a fatal emission-time error
	// never kills the caller's process, per spec §7.
	l.entry.Log(toLogrusLevel(level), msg)
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelWarning:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelFatal:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// noopLogger discards everything; used when Options.Logger is nil.
type noopLogger struct{}

func (noopLogger) Log(LogLevel, string) {}
