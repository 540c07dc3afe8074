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

// Flags that add the logging callsite to every line.
const (
	// LogFlagLongFile adds the full path and line number of the callsite,
	// e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile adds the file name and line number of the callsite,
	// e.g. main.go:123. It takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// defaultFlags are read once from the comma separated LOGFLAGS environment
// variable, which accepts "longfile" and "shortfile".
var defaultFlags = flagsFromEnv(os.Getenv("LOGFLAGS"))

func flagsFromEnv(value string) uint32 {
	var flags uint32
	for _, name := range strings.Split(value, ",") {
		switch strings.TrimSpace(name) {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

const (
	normalLogSize = 512
	logsBuffer    = 64

	// Log files are rolled once they reach 10 MB, and the 3 most recent
	// rolls are kept.
	rotateThresholdKB = 10 * 1000
	rotateMaxRolls    = 3
)

// levelWriter is a destination of the backend together with the lowest
// level it accepts.
type levelWriter struct {
	io.WriteCloser
	minLevel Level
}

// Backend serializes the lines of all subsystem loggers created from it and
// fans them out to its writers. Writers are added before Run; lines logged
// before Run or after Close are dropped.
type Backend struct {
	flag      uint32
	isRunning uint32
	writers   []levelWriter
	writeChan chan logEntry
	drained   sync.Mutex // held from Run until the write channel is drained
}

// NewBackend creates a backend using the flags from LOGFLAGS.
func NewBackend() *Backend {
	return NewBackendWithFlags(defaultFlags)
}

// NewBackendWithFlags creates a backend using flags instead of LOGFLAGS.
func NewBackendWithFlags(flags uint32) *Backend {
	return &Backend{flag: flags, writeChan: make(chan logEntry, logsBuffer)}
}

func (b *Backend) addWriter(w io.WriteCloser, minLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a log writer to a running backend")
	}
	b.writers = append(b.writers, levelWriter{WriteCloser: w, minLevel: minLevel})
	return nil
}

// AddLogWriter makes the backend write every line at minLevel or above to w.
func (b *Backend) AddLogWriter(w io.WriteCloser, minLevel Level) error {
	return b.addWriter(w, minLevel)
}

// AddLogFile makes the backend write every line at minLevel or above to a
// rotated log file, creating the file and its directory as needed.
func (b *Backend) AddLogFile(logFile string, minLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a log file to a running backend")
	}
	if logDir := filepath.Dir(logFile); logDir != "." {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, rotateThresholdKB, false, rotateMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	return b.addWriter(r, minLevel)
}

// Run starts writing logged lines in a separate goroutine. It may only be
// called once.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("the logger is already running")
	}
	b.drained.Lock()
	go func() {
		defer func() {
			if err := recover(); err != nil {
				fmt.Fprintf(os.Stderr, "Fatal error in the logger backend: %+v\n%s\n", err, debug.Stack())
			}
		}()
		defer b.drained.Unlock()
		defer atomic.StoreUint32(&b.isRunning, 0)

		for entry := range b.writeChan {
			for _, w := range b.writers {
				if entry.level >= w.minLevel {
					_, _ = w.Write(entry.log)
				}
			}
		}
	}()
	return nil
}

// IsRunning reports whether Run was called and Close has not finished.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close waits until every pending line is written and closes the writers.
func (b *Backend) Close() {
	close(b.writeChan)
	b.drained.Lock()
	defer b.drained.Unlock()
	for _, w := range b.writers {
		_ = w.Close()
	}
}

// Logger returns a logger for the given subsystem tag, writing to b at the
// info level until told otherwise.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: uint32(LevelInfo), tag: subsystemTag, b: b, writeChan: b.writeChan}
}
