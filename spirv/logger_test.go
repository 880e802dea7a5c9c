package spirv

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type recordingLogger struct {
	levels []LogLevel
}

func (r *recordingLogger) Log(level LogLevel, msg string) {
	r.levels = append(r.levels, level)
}

func TestModule_FatalLogPoisonsWithoutPanicking(t *testing.T) {
	rec := &recordingLogger{}
	m := NewModule(Options{Logger: rec})

	m.logf(LogLevelFatal, "unrecoverable: %s", "test condition")

	if !m.Poisoned() {
		t.Fatal("expected Module to be poisoned")
	}
	if len(rec.levels) != 1 || rec.levels[0] != LogLevelFatal {
		t.Fatalf("expected exactly one fatal log record, got %v", rec.levels)
	}
}

func TestNewLogrusLogger_DoesNotExitProcess(t *testing.T) {
	base := logrus.New()
	base.SetOutput(io.Discard)
	logger := NewLogrusLogger(base)

	// Log's contract is that fatal never calls os.Exit; reaching the next
	// line proves it.
	logger.Log(LogLevelFatal, "would be fatal in logrus.Fatal, but isn't here")
	logger.Log(LogLevelInfo, "still running")
}

func TestDefaultAllocator_Reserve(t *testing.T) {
	var a DefaultAllocator
	if got := a.Reserve(2); got < 8 {
		t.Fatalf("Reserve(2): got %d, want at least the 8-word minimum", got)
	}
	if got := a.Reserve(100); got != 100 {
		t.Fatalf("Reserve(100): got %d, want 100 unchanged", got)
	}
}
