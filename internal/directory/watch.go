package directory

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"proxy-lattice/utils"
)

const defaultDebounce = 100 * time.Millisecond

// Watch reloads the directory whenever its file changes, until ctx is done.
// It watches the parent directory so that editors replacing the file by
// rename are seen. Reload failures are logged and the old snapshot stays.
func (d *Directory) Watch(ctx context.Context) error {
	if d.path == "" {
		return errors.New("directory has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir, base := filepath.Split(filepath.Clean(d.path))
	if dir == "" {
		dir = "."
	}

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	d.logger.Info("watching directory file", zap.String("path", d.path))

	// Stopped and drained so that the first Reset arms it cleanly.
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if utils.Second(filepath.Split(event.Name)) != base {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			d.logger.Debug("directory file changed",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()))
			timer.Reset(d.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			d.logger.Warn("directory watcher error", zap.Error(err))

		case <-timer.C:
			if err := d.Reload(); err != nil {
				d.logger.Error("directory reload failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}
