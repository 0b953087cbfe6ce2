package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}
	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.Format())
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nothing")
	logger.With(slog.String("k", "v")).Error("still nothing")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level for zero logger, got %v", logger.Level())
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug), WithPretty(false))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_JSON_IsValid(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false), WithFormat(FormatJSON))

	logger.Info("hello", slog.Int("count", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if record["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", record["msg"])
	}
	if record["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", record["level"])
	}
	if record["count"] != float64(3) {
		t.Errorf("expected count 3, got %v", record["count"])
	}
}

func TestLogger_Trace_RendersName(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatText),
		WithPretty(false))

	logger.Trace("deep")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level, got: %s", buf.String())
	}
}

func TestLogger_Wrap_KeepsBase(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelWarn), WithPretty(false))
	wrapped := base.Wrap(WithFormat(FormatText))

	if wrapped.Level() != LevelWarn {
		t.Errorf("expected wrapped level Warn, got %v", wrapped.Level())
	}
	if wrapped.Format() != FormatText {
		t.Errorf("expected wrapped format text, got %v", wrapped.Format())
	}
	if base.Format() != FormatJSON {
		t.Errorf("base format changed to %v", base.Format())
	}
}

func TestLogger_Pretty_IncludesAttrs(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithFormat(tt.format), WithPretty(true)).
				With(slog.String("input", "a.json"))

			logger.Info("converted", slog.Group("node", slog.String("name", "bees")))

			out := buf.String()
			for _, want := range []string{"converted", "input", "a.json", "bees"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output: %s", want, out)
				}
			}
		})
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf syncBuffer
	logger := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.With(slog.Int("worker", i)).Info("tick")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "tick"); got != 8 {
		t.Errorf("expected 8 records, got %d", got)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer
	defaultMu.Lock()
	defaultLog = Make(&buf, WithLevel(LevelDebug), WithFormat(FormatJSON), WithPretty(false))
	defaultMu.Unlock()

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}
