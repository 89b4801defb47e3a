package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(dir, "new.png")

		require.NoError(t, common.WriteFile(path, []byte("data")))

		data, err := common.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []byte("data"), data)

		st, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, common.DefaultFilePerm, st.Mode().Perm())
	})

	t.Run("overwrite keeps mode", func(t *testing.T) {
		path := filepath.Join(dir, "existing.png")
		require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, common.WriteFile(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []byte("new"), data)

		st, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), st.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			require.NotContains(t, e.Name(), ".existing.png.", "temporary file must be removed")
		}
	})

	t.Run("symlink", func(t *testing.T) {
		target := filepath.Join(dir, "target.png")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

		link := filepath.Join(dir, "link.png")
		require.NoError(t, os.Symlink(target, link))

		require.NoError(t, common.WriteFile(link, []byte("new")))

		st, err := os.Lstat(link)
		require.NoError(t, err)
		require.NotZero(t, st.Mode()&os.ModeSymlink, "link must be kept")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, []byte("new"), data)
	})

	t.Run("missing directory", func(t *testing.T) {
		require.Error(t, common.WriteFile(filepath.Join(dir, "missing", "x.png"), nil))
	})

	t.Run("read missing", func(t *testing.T) {
		_, err := common.ReadFile(filepath.Join(dir, "missing.png"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
