package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vuetools/svgswap/config"
	"github.com/vuetools/svgswap/logger"
	"github.com/vuetools/svgswap/process"
	"github.com/vuetools/svgswap/scan"
)

const debounceInterval = 300 * time.Millisecond

func watchAndRewrite(ctx context.Context, root string, cfg *config.Config, dryRun bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root, cfg.Exclude); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name, cfg.Exclude)
			}

			if !isRelevantChange(event, cfg.Extensions) {
				continue
			}

			// Editors fire bursts of writes; debounce per file.
			path := event.Name
			mu.Lock()
			if t, found := timers[path]; found {
				t.Stop()
			}
			timers[path] = time.AfterFunc(debounceInterval, func() {
				rewriteOne(path, dryRun)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error: %v", err)
		}
	}
}

func rewriteOne(path string, dryRun bool) {
	changed, err := process.File(path, dryRun)
	if err != nil {
		logger.Error("error processing %s: %v", path, err)
		return
	}
	if !changed {
		logger.Debug("%s: nothing to rewrite", path)
	}
}

func isRelevantChange(event fsnotify.Event, exts []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	for _, want := range exts {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func addWatchDirs(watcher *fsnotify.Watcher, root string, exclude []string) error {
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = true
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if scan.SkippedDir(d.Name()) || excludeSet[d.Name()] {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string, exclude []string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path, exclude)
	}
}
