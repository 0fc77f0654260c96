// Package discover expands Go-style path patterns into tree files.
//
// Patterns behave like the go tool's:
//
//	./...               recurse from cwd
//	./dir               only that directory (non-recursive)
//	./dir/...           recurse from that directory
//	./page.hast.json    only that file
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Suffix is the extension of the files that are collected.
const Suffix = ".hast.json"

// Paths returns the absolute, deduplicated and sorted tree files matched by
// patterns, resolved against cwd. No patterns means "./...".
func Paths(cwd string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	seen := map[string]bool{}
	var out []string
	add := func(p string) error {
		abs, err := absFrom(cwd, p)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		// Recursive pattern: <dir>/...
		if strings.HasSuffix(pat, "/...") || pat == "..." {
			base := strings.TrimSuffix(strings.TrimSuffix(pat, "..."), "/")
			if base == "" {
				base = "."
			}
			dir, err := absFrom(cwd, base)
			if err != nil {
				return nil, err
			}
			if err := Walk(dir, add); err != nil {
				return nil, err
			}
			continue
		}

		// Non-recursive: a tree file or a directory.
		target, err := absFrom(cwd, pat)
		if err != nil {
			return nil, err
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			files, err := Dir(target)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				if err := add(f); err != nil {
					return nil, err
				}
			}
			continue
		}
		if !strings.HasSuffix(target, Suffix) {
			return nil, errors.Errorf("mdxc: not a %s file: %s", Suffix, target)
		}
		if err := add(target); err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

// Dir lists the tree files directly inside dir, sorted.
func Dir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), Suffix) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Walk calls add for every tree file below root, skipping vendor,
// node_modules and hidden directories.
func Walk(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path != root && skipDir(de.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), Suffix) {
			return add(path)
		}
		return nil
	})
}

func skipDir(name string) bool {
	return name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".")
}

func absFrom(cwd, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	return filepath.Abs(p)
}

// ModuleRoot returns the closest directory at or above start that holds a
// go.mod file.
func ModuleRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(err, "resolving module root")
	}
	for dir := abs; ; dir = filepath.Dir(dir) {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", errors.Errorf("no go.mod at or above %s", abs)
		}
	}
}
