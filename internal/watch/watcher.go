package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/qdm12/gdomains-updater/internal/params"
)

// Watcher reloads the domains file when it changes on disk, and
// on demand through Reload.
type Watcher struct {
	// Injected fields
	filePath string
	defaults params.Defaults
	reader   DomainsReader
	applier  Applier
	logger   Logger

	// Internal fields
	debounce    time.Duration
	reloadMutex sync.Mutex
	stopCh      chan<- struct{}
	done        <-chan struct{}
}

func New(filePath string, defaults params.Defaults,
	reader DomainsReader, applier Applier, logger Logger) *Watcher {
	const debounce = 3 * time.Second
	return &Watcher{
		filePath: filepath.Clean(filePath),
		defaults: defaults,
		reader:   reader,
		applier:  applier,
		logger:   logger,
		debounce: debounce,
	}
}

func (w *Watcher) String() string {
	return "config watcher"
}

// Reload reads the domains file and applies it.
// Concurrent reloads are serialized.
func (w *Watcher) Reload(ctx context.Context) (err error) {
	w.reloadMutex.Lock()
	defer w.reloadMutex.Unlock()

	configs, warnings, err := w.reader.DomainConfigs(w.filePath, w.defaults)
	if err != nil {
		return fmt.Errorf("reading domains: %w", err)
	}
	for _, warning := range warnings {
		w.logger.Warn(warning)
	}

	err = w.applier.Apply(ctx, configs)
	if err != nil {
		return fmt.Errorf("applying domains: %w", err)
	}
	return nil
}

func (w *Watcher) Start(ctx context.Context) (runError <-chan error, startErr error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// The parent directory is watched since editors often replace
	// the file instead of writing to it.
	err = watcher.Add(filepath.Dir(w.filePath))
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching directory of %s: %w", w.filePath, err)
	}

	ready := make(chan struct{})
	stopCh := make(chan struct{})
	w.stopCh = stopCh
	done := make(chan struct{})
	w.done = done
	go w.run(watcher, ready, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, w.Stop()
	}
	return nil, nil //nolint:nilnil
}

func (w *Watcher) run(watcher *fsnotify.Watcher, ready chan<- struct{},
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	w.logger.Info("watching " + w.filePath + " for changes")
	close(ready)

	var timer *time.Timer
	var debounced <-chan time.Time
	for {
		select {
		case <-stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			w.logger.Debug("domains file event: " + event.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			debounced = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watching domains file: " + err.Error())
		case <-debounced:
			debounced = nil
			w.logger.Info("domains file changed, reloading")
			err := w.Reload(ctx)
			if err != nil {
				w.logger.Error(err.Error())
			}
		}
	}
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.filePath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) Stop() (err error) {
	close(w.stopCh)
	<-w.done
	return nil
}
