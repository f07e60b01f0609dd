package schedule

import (
	"context"
	"sync"
)

// Handle owns the periodic timeline of a single domain.
type Handle struct {
	domain   string
	cancel   context.CancelFunc
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newHandle(domain string, cancel context.CancelFunc) *Handle {
	return &Handle{
		domain: domain,
		cancel: cancel,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *Handle) Domain() string { return h.domain }

// Stop cancels all future update attempts. It cancels the context of an
// attempt in flight and waits for it to return, so that no domain updated
// event is fired once Stop has been called.
// Stop can safely be called multiple times and concurrently.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		h.cancel()
		close(h.stop)
	})
	<-h.done
}
