package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveykit/surveysha/pkg/surveysha"
)

var (
	_ surveysha.Logger = (*StructuredLogger)(nil)
	_ surveysha.Logger = (*NullLogger)(nil)
)

// decodeLines parses every JSON log line written to buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line is not JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestStructuredLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, false)

	logger.Info("fingerprint written", "survey", "phq9", "score", "abc")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "fingerprint written", entries[0]["msg"])
	assert.Equal(t, "phq9", entries[0]["survey"])
	assert.Equal(t, "abc", entries[0]["score"])
}

func TestStructuredLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, false)

	logger.Error("fingerprint failed", "survey", "gad7", "error", errors.New("read failure"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, "read failure", entries[0]["error"])
}

func TestStructuredLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, true)

	logger.Verbose("discovered surveys", "count", 3)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.EqualValues(t, 3, entries[0]["count"])
}

func TestStructuredLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, false)

	logger.Verbose("discovered surveys", "count", 3)

	assert.Empty(t, buf.String())
}

func TestStructuredLogger_ForRun(t *testing.T) {
	var buf bytes.Buffer
	base := NewStructuredLogger(&buf, false)

	first := base.ForRun("surveys")
	second := base.ForRun("surveys")
	first.Info("one")
	second.Info("two")
	base.Info("three")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)

	id1, ok := entries[0]["run_id"].(string)
	require.True(t, ok, "run_id should be present")
	_, err := uuid.Parse(id1)
	require.NoError(t, err, "run_id should be a UUID")

	assert.Equal(t, "surveys", entries[0]["root"])
	assert.NotEqual(t, entries[0]["run_id"], entries[1]["run_id"], "each run gets its own id")
	assert.NotContains(t, entries[2], "run_id", "base logger is not modified")
}

func TestStructuredLogger_ConcurrentWrites(t *testing.T) {
	var buf syncBuffer
	logger := NewStructuredLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("entry", "n", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "interleaved output: %s", line)
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()
	// Should not panic
	logger.Verbose("x", "k", "v")
	logger.Info("x")
	logger.Error("x", "error", errors.New("e"))
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
