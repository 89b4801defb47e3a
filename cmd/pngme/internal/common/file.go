package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFilePerm is a permission of the newly created output files.
const DefaultFilePerm fs.FileMode = 0o644

// ReadFile reads the whole file.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// WriteFile replaces the file contents with data. The data is written to a
// temporary file in the same directory first and then renamed, so the
// original file is never left partially written. Permissions of the existing
// file are kept, new files get DefaultFilePerm. Symbolic links are followed:
// the link target is replaced, the link itself stays in place.
func WriteFile(path string, data []byte) error {
	perm := DefaultFilePerm

	resolved, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		path = resolved
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("resolve file path: %w", err)
	}

	st, err := os.Stat(path)
	switch {
	case err == nil:
		perm = st.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temporary file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("set file permissions: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}
