// Package poll implements the viewer side of the order sync model: re-fetch
// a snapshot on a fixed interval and only hand it to the renderer when it
// actually changed, so an unchanged transcript never causes a repaint.
package poll

import (
	"context"
	"log"
	"reflect"
	"time"
)

// Watcher polls Fetch every Interval and calls OnChange when the fresh
// snapshot differs (deep value equality) from the last delivered one.
// Fetch errors are logged and the loop keeps going; the next tick is the
// retry.
type Watcher[T any] struct {
	Interval time.Duration
	Fetch    func(ctx context.Context) (T, error)
	OnChange func(T)

	last   T
	primed bool
}

func NewWatcher[T any](interval time.Duration, fetch func(ctx context.Context) (T, error), onChange func(T)) *Watcher[T] {
	return &Watcher[T]{Interval: interval, Fetch: fetch, OnChange: onChange}
}

// Run polls until ctx is cancelled. The first successful fetch always
// fires OnChange; an in-flight fetch finishing after cancellation is
// discarded.
func (w *Watcher[T]) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Watcher[T]) tick(ctx context.Context) {
	snapshot, err := w.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("poll: fetch failed: %v", err)
		}
		return
	}
	if ctx.Err() != nil {
		return
	}

	if w.primed && reflect.DeepEqual(snapshot, w.last) {
		return
	}
	w.last = snapshot
	w.primed = true
	w.OnChange(snapshot)
}
