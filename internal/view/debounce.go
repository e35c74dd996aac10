package view

import (
	"sync"
	"time"
)

const DefaultDebounce = 300 * time.Millisecond

// Debouncer откладывает применение поискового терма, пока ввод не затихнет.
// После Stop колбэк гарантированно не сработает.
type Debouncer struct {
	d  time.Duration
	fn func(term string)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(d time.Duration, fn func(term string)) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d, fn: fn}
}

func (b *Debouncer) Update(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, func() {
		b.mu.Lock()
		stopped := b.stopped
		b.mu.Unlock()
		if stopped {
			return
		}
		b.fn(term)
	})
}

func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
