package logger_test

import (
	"testing"

	"github.com/nspcc-dev/pngme/pkg/util/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		l, err := logger.NewLogger(nil)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zap.InfoLevel))
		require.False(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("runtime level", func(t *testing.T) {
		var prm logger.Prm
		require.NoError(t, prm.SetLevelString("warn"))
		require.NoError(t, prm.SetEncoding(logger.EncodingJSON))

		l, err := logger.NewLogger(&prm)
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zap.InfoLevel))

		require.NoError(t, prm.SetLevelString("debug"))
		require.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("invalid", func(t *testing.T) {
		var prm logger.Prm
		require.Error(t, prm.SetLevelString("loud"))
		require.Error(t, prm.SetEncoding("xml"))
	})
}
