package sink

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/spokeplot/pkg/errors"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
)

// filePerm is the mode of written documents.
const filePerm = 0644

// WriteSVG renders g and writes it to path with [WriteFile].
func WriteSVG(path string, g layout.Geometry, opts ...SVGOption) error {
	return WriteFile(path, RenderSVG(g, opts...))
}

// WriteFile replaces the file at path with data.
//
// The data goes to a temporary file in the same directory which is synced,
// closed and renamed over path. A reader of path sees either the previous
// document or the complete new one. On failure the temporary file is removed
// and the error has code IO_FAILURE.
func WriteFile(path string, data []byte) (err error) {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "sync %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "chmod %s", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "replace %s", path)
	}
	return nil
}
