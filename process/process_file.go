// Package process applies the document transform to files on disk. It is
// the boundary between the pure transform and the filesystem: one read, one
// conditional write, per-file reporting.
package process

import (
	"fmt"
	"os"

	"github.com/vuetools/svgswap/logger"
	"github.com/vuetools/svgswap/transform"
)

// File transforms one component file in place and reports whether it
// changed. With dryRun the transform runs but nothing is written. Errors are
// returned, not logged, so callers decide whether to continue with other
// files.
func File(path string, dryRun bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := transform.TransformDocument(string(data))
	if result.Warning != "" {
		logger.Warn("%s: %s", path, result.Warning)
		return false, nil
	}
	if !result.Changed {
		logger.Debug("%s: no changes", path)
		return false, nil
	}

	if !dryRun {
		if err := os.WriteFile(path, []byte(result.NewText), 0o644); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	logger.Success("%s", path)
	logger.Info("  %d imports added, %d tags replaced, %d tags skipped (dynamic :src)",
		result.Summary.ImportsAdded, result.Summary.TagsReplaced, result.Summary.TagsSkipped)

	return true, nil
}
