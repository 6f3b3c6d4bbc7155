// Package inputwatch reports changes to the puzzle inputs below an input
// directory laid out as <dir>/day_NN/<name>.txt.
package inputwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch monitors dir and its day directories and calls onChange with the
// day and path of every .txt file that is written or created. It runs
// until ctx is cancelled.
func Watch(ctx context.Context, dir string, logger *zap.Logger, onChange func(day int, path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	for _, e := range entries {
		if _, ok := ParseDayDir(e.Name()); ok && e.IsDir() {
			if err := watcher.Add(filepath.Join(dir, e.Name())); err != nil {
				return fmt.Errorf("watch %s: %w", e.Name(), err)
			}
		}
	}

	logger.Info("watching inputs", zap.String("dir", dir), zap.Strings("watched", watcher.WatchList()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// editors that save atomically produce Create rather than Write
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if day, ok := ParseDayDir(filepath.Base(event.Name)); ok && filepath.Dir(event.Name) == filepath.Clean(dir) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					logger.Debug("new day directory", zap.Int("day", day), zap.String("path", event.Name))
					if err := watcher.Add(event.Name); err != nil {
						logger.Error("watch day directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
				continue
			}

			day, ok := DayOf(event.Name)
			if !ok || filepath.Ext(event.Name) != ".txt" {
				continue
			}
			logger.Debug("input changed", zap.Int("day", day), zap.String("path", event.Name), zap.Stringer("op", event.Op))
			onChange(day, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}

// ParseDayDir decodes the day of a "day_NN" directory name.
func ParseDayDir(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "day_")
	if !ok || len(rest) == 0 {
		return 0, false
	}
	day := 0
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, false
		}
		day = 10*day + int(c-'0')
		if day > 99 {
			return 0, false
		}
	}
	return day, day > 0
}

// DayOf decodes the day of an input file from its parent directory.
func DayOf(path string) (int, bool) {
	return ParseDayDir(filepath.Base(filepath.Dir(path)))
}
