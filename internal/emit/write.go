package emit

import (
	"os"
	"path/filepath"

	"github.com/routegen-dev/routegen/internal/errors"
)

// WriteFile writes generated source as a single whole-file write. There is
// no two-phase commit: a crash mid-write can corrupt the file, which is
// acceptable for a dev-time tool that regenerates on the next pass. If the
// write cannot start (missing directory, permissions) the previous
// generated file is left untouched.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("R031").WithDetailf("creating directory for %q", path).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("R031").WithDetailf("writing %q", path).Wrap(err)
	}
	return nil
}
