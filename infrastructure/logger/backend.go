package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const normalLogSize = 512

// Flags to modify Backend's behavior.
const (
	// LogFlagLongFile modifies the logger output to include full path and line number
	// of the logging callsite, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile modifies the logger output to include filename and line number
	// of the logging callsite, e.g. main.go:123. takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// defaultFlags is read from the LOGFLAGS environment variable. It is a
// variable initializer rather than an init function because BackendLog is
// initialized from it.
var defaultFlags = flagsFromEnvironment()

func flagsFromEnvironment() (flags uint32) {
	for _, flag := range strings.Split(os.Getenv("LOGFLAGS"), ",") {
		switch strings.TrimSpace(flag) {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

const (
	logsBuffer         = 1024
	defaultThresholdKB = 100 * 1000 // 100 MB
	defaultMaxRolls    = 8
)

// Backend is a logging backend. Subsystem loggers hand formatted entries to
// a single goroutine that fans them out to every writer whose level allows
// them, so writes from different subsystems never interleave.
type Backend struct {
	flag      uint32
	isRunning uint32
	writers   []logWriter
	writeChan chan logEntry
	doneWrite sync.Mutex // held by the writing goroutine until writeChan is drained
}

// NewBackendWithFlags configures a Backend to use the specified flags rather than using
// the package's defaults as determined through the LOGFLAGS environment
// variable.
func NewBackendWithFlags(flags uint32) *Backend {
	return &Backend{flag: flags, writeChan: make(chan logEntry, logsBuffer)}
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return NewBackendWithFlags(defaultFlags)
}

type logWriter struct {
	io.WriteCloser
	level Level
}

func (b *Backend) addWriter(writer io.WriteCloser, level Level) error {
	if b.IsRunning() {
		return errors.New("writers cannot be added to a running logger")
	}
	b.writers = append(b.writers, logWriter{WriteCloser: writer, level: level})
	return nil
}

// AddLogFile adds a rotated log file receiving every entry at logLevel or
// above. The file and its directory are created if needed.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogWriter adds writer as a destination for every entry at logLevel or
// above. It must be called before Run.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	return b.addWriter(writer, logLevel)
}

// AddLogFileWithCustomRotator is like AddLogFile, but rolls the file every
// thresholdKB kilobytes and keeps maxRolls old files.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	if logDir := filepath.Dir(logFile); logDir != "." {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	return b.addWriter(r, logLevel)
}

// Run starts the writing goroutine. It fails if the backend already runs.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("the logger is already running")
	}
	b.doneWrite.Lock()
	go func() {
		defer func() {
			if err := recover(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Fatal error in logger.Backend goroutine: %+v\n", err)
				_, _ = fmt.Fprintf(os.Stderr, "Goroutine stacktrace: %s\n", debug.Stack())
			}
		}()
		defer b.doneWrite.Unlock()
		b.writeEntries()
	}()
	return nil
}

func (b *Backend) writeEntries() {
	for entry := range b.writeChan {
		for _, writer := range b.writers {
			if entry.level >= writer.level {
				_, _ = writer.Write(entry.log)
			}
		}
	}
}

// IsRunning returns whether Run was called and Close was not.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close flushes every pending entry and closes all writers.
func (b *Backend) Close() {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 1, 0) {
		return
	}
	close(b.writeChan)
	b.doneWrite.Lock()
	defer b.doneWrite.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger is off until its level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{LevelOff, subsystemTag, b, b.writeChan}
}
