package cli

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

// watchDebounce collapses the burst of events an editor produces on save.
const watchDebounce = 100 * time.Millisecond

// datasetChangedMsg tells the preview that its input file changed on disk.
type datasetChangedMsg struct{}

// watchInput calls send with a datasetChangedMsg whenever path is written or
// recreated. The parent directory is watched so that editors which save by
// renaming a temporary file are noticed too. The returned function stops the
// watcher.
func watchInput(ctx context.Context, path string, send func(tea.Msg)) (func() error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create watcher")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, errors.Wrap(errors.ErrCodeIO, err, "watch %s", filepath.Dir(abs))
	}

	go watchLoop(ctx, watcher, abs, send)
	return watcher.Close, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, send func(tea.Msg)) {
	logger := loggerFromContext(ctx)
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				send(datasetChangedMsg{})
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher error", "err", err)
		}
	}
}
