package testutil_test

import (
	"encoding/json"
	"testing"

	"github.com/nspcc-dev/pngme/internal/testutil"
	"go.uber.org/zap"
)

func TestNewBufferedLogger(t *testing.T) {
	l, b := testutil.NewBufferedLogger(t, zap.InfoLevel)
	b.AssertEmpty()

	l.Debug("dropped")
	b.AssertEmpty()

	l.Info("chunk appended", zap.String("type", "RuSt"), zap.Uint32("length", 42))
	l.Error("parse failed", zap.Int("size", 7))

	b.AssertMessages("chunk appended", "parse failed")
	b.AssertContains(testutil.LogEntry{
		Level:   zap.InfoLevel,
		Message: "chunk appended",
		Fields:  map[string]any{"type": "RuSt", "length": json.Number("42")},
	})
	b.AssertContains(testutil.LogEntry{
		Level:   zap.ErrorLevel,
		Message: "parse failed",
		Fields:  map[string]any{"size": json.Number("7")},
	})
}
