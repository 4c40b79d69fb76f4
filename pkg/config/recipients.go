package config

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Kxngreece/Healstep-API/pkg/common"
)

// Recipients are the fixed notification address lists, one per kind of
// notification.
type Recipients struct {
	Alerts   []string `yaml:"alerts"`
	Feedback []string `yaml:"feedback"`
}

func LoadRecipients(path string) (*Recipients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read recipients file: %w", err)
	}

	var recipients Recipients
	if err := yaml.Unmarshal(data, &recipients); err != nil {
		return nil, fmt.Errorf("config: parse recipients yaml: %w", err)
	}

	if err := recipients.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &recipients, nil
}

func (r Recipients) Validate() error {
	for _, list := range [][]string{r.Alerts, r.Feedback} {
		for _, addr := range list {
			if _, err := mail.ParseAddress(addr); err != nil {
				return fmt.Errorf("invalid recipient %q: %w", addr, err)
			}
		}
	}
	return nil
}

// WatchRecipients reloads path whenever it changes and hands the new lists to
// onChange. The parent directory is watched so that atomic saves (write a
// temp file, rename it over path) and symlink swaps are seen as well as
// in-place writes. A file that fails to load keeps the previous lists active.
// It blocks until ctx is cancelled.
func WatchRecipients(ctx context.Context, path string, onChange func(*Recipients)) error {
	logger := common.GetLoggerWith(common.LoggerNameConfig)

	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	logger.Info("Watching recipients file", zap.String("path", path), zap.String("dir", dir))

	target := resolvedPath(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// a swapped symlink changes what path points at without touching path
			current := resolvedPath(path)
			if filepath.Clean(event.Name) != path && current == target {
				continue
			}
			target = current

			recipients, err := LoadRecipients(path)
			if err != nil {
				logger.Error("Recipients reload failed, keeping previous lists", zap.String("path", path), zap.Error(err))
				continue
			}

			logger.Info("Recipients reloaded",
				zap.String("path", path),
				zap.Int("alerts", len(recipients.Alerts)),
				zap.Int("feedback", len(recipients.Feedback)))
			onChange(recipients)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Recipients watcher error", zap.Error(err))
		}
	}
}

func resolvedPath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
