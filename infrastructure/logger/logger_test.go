package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferWriteCloser struct {
	mtx    sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (b *bufferWriteCloser) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

func (b *bufferWriteCloser) Close() error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.closed = true
	return nil
}

func TestBackendFiltersByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferWriteCloser{}
	warnings := &bufferWriteCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %v", err)
	}
	if err := backend.AddLogWriter(warnings, LevelWarn); err != nil {
		t.Fatalf("AddLogWriter: %v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := backend.AddLogWriter(&bufferWriteCloser{}, LevelInfo); err == nil {
		t.Errorf("AddLogWriter succeeded on a running backend")
	}

	log := backend.Logger("TEST")
	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)
	log.SetLevel(LevelTrace)
	log.Tracef("traced")
	log.Warn("warned")
	backend.Close()

	output := all.buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug line written while logger was at info level: %q", output)
	}
	for _, want := range []string{"[INF] TEST: shown 2\n", "[TRC] TEST: traced\n", "[WRN] TEST: warned\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q does not contain %q", output, want)
		}
	}
	if strings.Contains(warnings.buf.String(), "shown") {
		t.Errorf("warn writer received an info line: %q", warnings.buf.String())
	}
	if !strings.Contains(warnings.buf.String(), "warned") {
		t.Errorf("warn writer is missing the warning: %q", warnings.buf.String())
	}
	if !all.closed || !warnings.closed {
		t.Errorf("Close did not close all writers")
	}
}

func TestLoggerDropsLinesBeforeRun(t *testing.T) {
	backend := NewBackendWithFlags(0)
	w := &bufferWriteCloser{}
	if err := backend.AddLogWriter(w, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %v", err)
	}
	backend.Logger("TEST").Info("too early")
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := backend.Run(); err == nil {
		t.Errorf("second Run unexpectedly succeeded")
	}
	backend.Close()
	if w.buf.Len() != 0 {
		t.Errorf("unexpected output %q", w.buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"Warn", LevelWarn, true},
		{"err", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}
	for _, test := range tests {
		got, ok := LevelFromString(test.in)
		if got != test.want || ok != test.wantOK {
			t.Errorf("LevelFromString(%q) = (%s, %t), want (%s, %t)",
				test.in, got, ok, test.want, test.wantOK)
		}
		_, err := ParseLevel(test.in)
		if (err == nil) != test.wantOK {
			t.Errorf("ParseLevel(%q) error = %v", test.in, err)
		}
	}
	if Level(42).String() != "OFF" {
		t.Errorf("out of range level should print as OFF")
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	a := RegisterSubSystem("TSTA")
	b := RegisterSubSystem("TSTB")
	if RegisterSubSystem("TSTA") != a {
		t.Fatalf("RegisterSubSystem returned a new logger for an existing subsystem")
	}

	if err := ParseAndSetLogLevels("debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %v", err)
	}
	if a.Level() != LevelDebug || b.Level() != LevelDebug {
		t.Errorf("global level not applied: %s %s", a.Level(), b.Level())
	}

	if err := ParseAndSetLogLevels("TSTA=trace,TSTB=error"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %v", err)
	}
	if a.Level() != LevelTrace || b.Level() != LevelError {
		t.Errorf("per subsystem levels not applied: %s %s", a.Level(), b.Level())
	}

	for _, bad := range []string{"loud", "TSTA=loud", "NOPE=info", "TSTA=info,garbage"} {
		if err := ParseAndSetLogLevels(bad); err == nil {
			t.Errorf("ParseAndSetLogLevels(%q) succeeded", bad)
		}
	}
}
