package outfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// WriteGeneratedFile writes src to outPath, replacing it atomically. A file
// that already holds src is left untouched. It reports whether it wrote.
func WriteGeneratedFile(outPath string, src []byte) (bool, error) {
	if old, err := os.ReadFile(outPath); err == nil && bytes.Equal(old, src) {
		return false, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*")
	if err != nil {
		return false, errors.Wrapf(err, "writing %s", outPath)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return false, errors.Wrapf(err, "writing %s", outPath)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return false, errors.Wrapf(err, "writing %s", outPath)
	}
	if err := tmp.Close(); err != nil {
		return false, errors.Wrapf(err, "writing %s", outPath)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return false, errors.Wrapf(err, "writing %s", outPath)
	}
	return true, nil
}

// OutputPath returns the generated file path for a tree file:
// "page.hast.json" becomes "page.jsx".
func OutputPath(treePath string) string {
	return trimTreeSuffix(treePath) + ".jsx"
}

func trimTreeSuffix(p string) string {
	for _, suffix := range []string{".hast.json", ".json"} {
		if strings.HasSuffix(p, suffix) {
			return strings.TrimSuffix(p, suffix)
		}
	}
	return p
}
