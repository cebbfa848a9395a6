package analytics

import (
	"context"
	"sync"
)

// Recorder is a Reporter that keeps every event in memory, for tests.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

// Report appends ev to Events.
func (r *Recorder) Report(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

// Named returns the recorded events with the given name, in order.
func (r *Recorder) Named(name string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, ev := range r.Events {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}
