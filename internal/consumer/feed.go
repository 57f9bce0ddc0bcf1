package consumer

import (
	"sync"

	"ethograph/internal/model"
)

// Feed is the bounded in-process buffer behind the live activity panel.
// Oldest events fall off silently; readers get newest first.
type Feed struct {
	mu     sync.RWMutex
	buf    []*model.Event
	next   int
	filled bool
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 256
	}
	return &Feed{buf: make([]*model.Event, capacity)}
}

func (f *Feed) Push(events ...*model.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range events {
		f.buf[f.next] = ev
		f.next++
		if f.next == len(f.buf) {
			f.next = 0
			f.filled = true
		}
	}
}

// Latest returns up to n of the most recent events, newest first.
// n <= 0 means everything buffered.
func (f *Feed) Latest(n int) []*model.Event {
	f.mu.RLock()
	defer f.mu.RUnlock()
	size := f.next
	if f.filled {
		size = len(f.buf)
	}
	if n <= 0 || n > size {
		n = size
	}
	out := make([]*model.Event, 0, n)
	for i := 0; i < n; i++ {
		idx := f.next - 1 - i
		if idx < 0 {
			idx += len(f.buf)
		}
		out = append(out, f.buf[idx])
	}
	return out
}

func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.filled {
		return len(f.buf)
	}
	return f.next
}
