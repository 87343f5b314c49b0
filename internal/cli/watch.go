package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// watchFile runs run once, then again after every change to path, until ctx
// is done. Failures of run are logged, not returned, so a half-edited input
// does not end the session. The parent directory is watched because editors
// often replace files by rename.
func watchFile(ctx context.Context, path string, logger *zap.Logger, run func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Trace(err)
	}

	if err := run(); err != nil {
		logger.Error("solve failed", zap.String("input", path), zap.Error(err))
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Trace(err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Annotatef(err, "watch %s", filepath.Dir(abs))
	}
	logger.Info("watching input", zap.String("input", abs))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fire = time.After(watchDebounce)
			}

		case <-fire:
			fire = nil
			logger.Info("input changed, solving again", zap.String("input", path))
			if err := run(); err != nil {
				logger.Error("solve failed", zap.String("input", path), zap.Error(err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
