package lsp

import (
	"sync"
	"time"
)

// pollInterval bounds how often the debouncer checks for entries ready to
// flush; coalesceWindow is the minimum quiet period before a pending
// change is scanned.
const (
	pollInterval   = 50 * time.Millisecond
	coalesceWindow = 300 * time.Millisecond
)

type pendingChange struct {
	content   string
	changedAt time.Time
}

// Debouncer coalesces rapid didChange notifications by URI: the latest
// content replaces the pending entry for that URI and resets its age. A
// single background worker flushes every entry whose age has crossed
// coalesceWindow by invoking the configured callback once per URI.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]pendingChange
	flush   func(uri, content string)
	stop    chan struct{}
	stopped bool
}

// NewDebouncer starts the polling worker immediately; flush is called from
// the worker goroutine, never concurrently for the same URI.
func NewDebouncer(flush func(uri, content string)) *Debouncer {
	d := &Debouncer{
		pending: make(map[string]pendingChange),
		flush:   flush,
		stop:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Schedule records content as the latest pending change for uri.
func (d *Debouncer) Schedule(uri, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[uri] = pendingChange{content: content, changedAt: time.Now()}
}

// Stop ends the polling worker. Safe to call once.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	close(d.stop)
}

func (d *Debouncer) run() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.flushReady()
		}
	}
}

func (d *Debouncer) flushReady() {
	now := time.Now()

	var ready []string
	d.mu.Lock()
	for uri, p := range d.pending {
		if now.Sub(p.changedAt) >= coalesceWindow {
			ready = append(ready, uri)
		}
	}
	contents := make(map[string]string, len(ready))
	for _, uri := range ready {
		contents[uri] = d.pending[uri].content
		delete(d.pending, uri)
	}
	d.mu.Unlock()

	for _, uri := range ready {
		d.flush(uri, contents[uri])
	}
}
