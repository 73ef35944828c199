// Package host supplies the environment capability a beacon reads its defaults from:
// navigator strings, timezone, current location, clock, and the document and window
// to capture events on.
package host

import (
	"sync"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// Host is a configurable types.Host.
type Host struct {
	mu        sync.Mutex
	navigator types.Navigator
	timezone  string
	location  string
	clock     func() time.Time
	document  types.EventTarget
	window    types.Window
}

// New returns a Host with a UTC timezone and the wall clock, adjusted by options.
func New(options ...types.Option[*Host]) *Host {
	h := &Host{
		timezone: "UTC",
		clock:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

// Navigator implements types.Host.
func (h *Host) Navigator() types.Navigator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.navigator
}

// Timezone implements types.Host.
func (h *Host) Timezone() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timezone
}

// Location implements types.Host. A window's location wins over the static one.
func (h *Host) Location() string {
	h.mu.Lock()
	window, location := h.window, h.location
	h.mu.Unlock()

	if window != nil {
		return window.Location()
	}
	return location
}

// Now implements types.Host.
func (h *Host) Now() time.Time {
	h.mu.Lock()
	clock := h.clock
	h.mu.Unlock()
	return clock()
}

// Document implements types.Host.
func (h *Host) Document() types.EventTarget {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.document
}

// Window implements types.Host.
func (h *Host) Window() types.Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.window
}
