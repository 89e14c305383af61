package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/labi-le/xbind/pkg/ctxlog"
	"github.com/rs/zerolog"
)

var ErrWatcherClosed = errors.New("config watcher closed")

// Watch reloads path whenever it is written and passes the result to apply,
// until ctx is done. Invalid files are logged and skipped. The directory is
// watched rather than the file, since editors often replace it on save.
func Watch(ctx context.Context, path string, log zerolog.Logger, apply func(Config)) error {
	log = ctxlog.Op(log, "config.Watch")

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				log.Warn().Err(err).Msg("reload config")
				continue
			}
			log.Info().Str("path", path).Msg("config reloaded")
			apply(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			log.Warn().Err(err).Msg("watch config")
		}
	}
}
