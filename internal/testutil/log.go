package testutil

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

const (
	levelKey   = "level"
	messageKey = "msg"
	timeKey    = "ts"
)

// LogEntry is a decoded [zap.Logger] record. Timestamps are dropped.
type LogEntry struct {
	Level   zapcore.Level
	Message string
	// Numbers are decoded as [json.Number].
	Fields map[string]any
}

// LogBuffer collects JSON-encoded [zap.Logger] records in memory.
type LogBuffer struct {
	t  testing.TB
	mu sync.Mutex
	b  zaptest.Buffer
}

// NewBufferedLogger returns logger writing to the returned buffer. Records
// below minLevel are dropped.
func NewBufferedLogger(t testing.TB, minLevel zapcore.Level) (*zap.Logger, *LogBuffer) {
	lb := &LogBuffer{t: t}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.LevelKey = levelKey
	encCfg.MessageKey = messageKey
	encCfg.TimeKey = timeKey

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(lb), minLevel)

	return zap.New(core), lb
}

// Write implements [io.Writer] for the logger core.
func (x *LogBuffer) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.b.Write(p)
}

// AssertEmpty asserts that nothing has been logged.
func (x *LogBuffer) AssertEmpty() {
	require.Empty(x.t, x.Entries())
}

// AssertContains asserts that e has been logged at least once.
func (x *LogBuffer) AssertContains(e LogEntry) {
	require.Contains(x.t, x.Entries(), e)
}

// AssertMessages asserts that exactly given messages have been logged in
// given order.
func (x *LogBuffer) AssertMessages(msgs ...string) {
	es := x.Entries()
	got := make([]string, len(es))
	for i := range es {
		got[i] = es[i].Message
	}
	require.Equal(x.t, msgs, got)
}

// Entries decodes all logged records.
func (x *LogBuffer) Entries() []LogEntry {
	x.mu.Lock()
	lines := x.b.Lines()
	x.mu.Unlock()

	res := make([]LogEntry, len(lines))
	for i := range lines {
		dec := json.NewDecoder(strings.NewReader(lines[i]))
		dec.UseNumber()

		var m map[string]any
		require.NoError(x.t, dec.Decode(&m), i)

		lvl, ok := m[levelKey].(string)
		require.True(x.t, ok, i)
		require.NoError(x.t, res[i].Level.UnmarshalText([]byte(lvl)), i)

		res[i].Message, ok = m[messageKey].(string)
		require.True(x.t, ok, i)

		delete(m, levelKey)
		delete(m, messageKey)
		delete(m, timeKey)
		res[i].Fields = m
	}

	return res
}
