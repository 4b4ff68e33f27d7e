package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/surveykit/surveysha/internal/files/filesystem"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger keeps every entry so tests can assert on what was logged.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Verbose(msg string, args ...any) { l.record("verbose", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)    { l.record("info", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any)   { l.record("error", msg, args) }

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e.msg)
		}
	}
	return out
}

var errInjectedWrite = errors.New("injected write failure")

// failingWriteFS fails writes to the listed base names and records every write.
type failingWriteFS struct {
	*filesystem.MemoryFileSystem
	failDirs map[string]bool
	writes   []string
}

func (f *failingWriteFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	f.writes = append(f.writes, path)
	if f.failDirs[filepath.Base(filepath.Dir(path))] {
		return fmt.Errorf("write %s: %w", path, errInjectedWrite)
	}
	return f.MemoryFileSystem.WriteFile(path, data, perm)
}

type mockScanner struct {
	surveys []surveysha.Survey
	err     error
}

func (m *mockScanner) Discover(_ string) ([]surveysha.Survey, error) {
	return m.surveys, m.err
}

// removeBeforeWriteFS deletes a survey directory right before the first write,
// as if it vanished between reading the sources and writing the fingerprint.
type removeBeforeWriteFS struct {
	*filesystem.MemoryFileSystem
	dir string
}

func (r *removeBeforeWriteFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	entries, err := r.MemoryFileSystem.ReadDir(r.dir)
	if err == nil {
		for _, entry := range entries {
			_ = r.MemoryFileSystem.Remove(r.dir + "/" + entry.Name())
		}
		_ = r.MemoryFileSystem.Remove(r.dir)
	}
	return r.MemoryFileSystem.WriteFile(path, data, perm)
}
