// Package hooks implements a request scoped dispatcher of
// named lifecycle events to prioritized callbacks.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
)

type Event string

const (
	// PluginsLoaded is fired once all plugins are loaded,
	// before the page is rendered.
	PluginsLoaded Event = "plugins_loaded"
	// AdminNotices is fired where the admin notices
	// are rendered in the page.
	AdminNotices Event = "admin_notices"
)

const (
	PriorityDefault = 10
	// PriorityLast runs a callback after all other callbacks
	// registered with a lower priority.
	PriorityLast = math.MaxInt
)

// Callback is run when its event is fired. It can write output to w.
type Callback func(ctx context.Context, w io.Writer) error

type handler struct {
	priority int
	callback Callback
}

// Dispatcher is not safe for concurrent use, create one per request.
type Dispatcher struct {
	handlers map[Event][]handler
}

func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Event][]handler),
	}
}

// Add registers the callback for the event. Callbacks with the same
// priority run in the order they were added.
func (d *Dispatcher) Add(event Event, priority int, callback Callback) {
	d.handlers[event] = append(d.handlers[event], handler{
		priority: priority,
		callback: callback,
	})
}

// Has returns true if at least one callback is registered for the event.
func (d *Dispatcher) Has(event Event) bool {
	return len(d.handlers[event]) > 0
}

// Fire runs the callbacks of the event by ascending priority.
// Callbacks added for the event while it fires are not run.
// All callbacks run even if some fail, and their errors are joined.
func (d *Dispatcher) Fire(ctx context.Context, event Event, w io.Writer) (err error) {
	handlers := make([]handler, len(d.handlers[event]))
	copy(handlers, d.handlers[event])
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].priority < handlers[j].priority
	})

	errs := make([]error, 0, len(handlers))
	for i, handler := range handlers {
		err := handler.callback(ctx, w)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s callback %d of %d: %w",
				event, i+1, len(handlers), err))
		}
	}

	return errors.Join(errs...)
}
