// Package dom models the host page a beacon is embedded in: a document parsed
// from HTML whose elements can be clicked, and a window that raises uncaught
// errors and rejections. Dispatch runs capture-phase listeners first, then the
// rest, in registration order.
package dom

import (
	"sync"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

type listenerEntry struct {
	eventType string
	listener  types.EventListener
	capture   bool
}

type eventTarget struct {
	mu        sync.Mutex
	listeners []listenerEntry
}

// AddEventListener implements types.EventTarget.
func (t *eventTarget) AddEventListener(eventType string, listener types.EventListener, useCapture bool) {
	if listener == nil {
		return
	}
	t.mu.Lock()
	t.listeners = append(t.listeners, listenerEntry{eventType: eventType, listener: listener, capture: useCapture})
	t.mu.Unlock()
}

// ListenerCount returns how many listeners are registered for eventType.
func (t *eventTarget) ListenerCount(eventType string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, l := range t.listeners {
		if l.eventType == eventType {
			n++
		}
	}
	return n
}

// Dispatch delivers e to every listener registered for its type.
func (t *eventTarget) Dispatch(e types.Event) {
	t.mu.Lock()
	snapshot := append([]listenerEntry(nil), t.listeners...)
	t.mu.Unlock()

	for _, phaseCapture := range []bool{true, false} {
		for _, l := range snapshot {
			if l.capture == phaseCapture && l.eventType == e.Type() {
				l.listener(e)
			}
		}
	}
}
