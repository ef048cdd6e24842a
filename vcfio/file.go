package vcfio

import (
	"os"
	"path/filepath"

	"github.com/dlstool/vcf/vcferr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ReadFile returns the contents of the file at path.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return b, nil
}

// WriteFile atomically replaces the file at path with data. Failures are
// vcferr write errors carrying path and the underlying error.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return writeFailed(path, err)
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return writeFailed(path, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return writeFailed(path, err)
	}
	if err = tmp.Close(); err != nil {
		return writeFailed(path, err)
	}
	if err = os.Chmod(name, perm); err != nil {
		return writeFailed(path, err)
	}
	if err = os.Rename(name, path); err != nil {
		return writeFailed(path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote file")
	return nil
}

func writeFailed(path string, err error) error {
	return errors.WithStack(vcferr.WriteFailed(path, err))
}
