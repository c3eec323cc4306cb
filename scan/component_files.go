package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".nuxt":        true,
	".output":      true,
	"dist":         true,
	".idea":        true,
	".vscode":      true,
}

// SkippedDir reports whether a directory name is always pruned during
// discovery.
func SkippedDir(name string) bool {
	return skippedDirs[name]
}

// FindComponentFiles recursively collects files under root whose extension
// is in exts. Extension comparison is case-insensitive. Directories named in
// skippedDirs or exclude are pruned.
func FindComponentFiles(root string, exts []string, exclude []string) ([]string, error) {
	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = true
	}
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] || excludeSet[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
