package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func TestBackendWritesByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	errorsOnly := &bufferCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.AddLogWriter(errorsOnly, LevelError); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %+v", err)
	}
	if err := backend.AddLogWriter(&bufferCloser{}, LevelInfo); err == nil {
		t.Fatalf("AddLogWriter: expected an error on a running backend")
	}

	log := backend.Logger("TEST")
	log.Infof("dropped while off")
	log.SetLevel(LevelDebug)
	log.Tracef("dropped below level")
	log.Debugf("block %d", 7)
	log.Errorf("bad block %d", 8)
	backend.Close()

	if !all.closed || !errorsOnly.closed {
		t.Fatalf("Close did not close the writers")
	}
	allLines := strings.Split(strings.TrimSpace(all.String()), "\n")
	if len(allLines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(allLines), all.String())
	}
	if !strings.HasSuffix(allLines[0], "[DBG] TEST: block 7") {
		t.Fatalf("unexpected line %q", allLines[0])
	}
	if !strings.HasSuffix(strings.TrimSpace(errorsOnly.String()), "[ERR] TEST: bad block 8") ||
		strings.Count(errorsOnly.String(), "\n") != 1 {
		t.Fatalf("unexpected error log %q", errorsOnly.String())
	}
}

func TestRegisterSubSystemReturnsSameLogger(t *testing.T) {
	first := RegisterSubSystem("TST1")
	if RegisterSubSystem("TST1") != first {
		t.Fatalf("RegisterSubSystem returned a new logger for a registered tag")
	}
	if RegisterSubSystem("TST2") == first {
		t.Fatalf("RegisterSubSystem returned the same logger for different tags")
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TST3")
	second := RegisterSubSystem("TST4")

	tests := []struct {
		levels         string
		expectError    bool
		expectedFirst  Level
		expectedSecond Level
	}{
		{levels: "debug", expectedFirst: LevelDebug, expectedSecond: LevelDebug},
		{levels: "TST3=trace,TST4=warn", expectedFirst: LevelTrace, expectedSecond: LevelWarn},
		{levels: "loud", expectError: true},
		{levels: "TST3", expectError: true},
		{levels: "NOPE=info", expectError: true},
		{levels: "TST3=loud", expectError: true},
	}
	for _, test := range tests {
		err := ParseAndSetLogLevels(test.levels)
		if test.expectError {
			if err == nil {
				t.Fatalf("%q: expected an error", test.levels)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %+v", test.levels, err)
		}
		if first.Level() != test.expectedFirst || second.Level() != test.expectedSecond {
			t.Fatalf("%q: got levels %s and %s", test.levels, first.Level(), second.Level())
		}
	}
	SetLogLevels("off")
}
