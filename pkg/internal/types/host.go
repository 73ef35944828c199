package types

import "time"

// Navigator carries the user agent description the host exposes.
type Navigator struct {
	Platform  string
	Vendor    string
	UserAgent string
}

// Event is anything dispatched to an EventTarget.
type Event interface {
	Type() string
}

// EventListener receives dispatched events.
type EventListener func(Event)

// EventTarget accepts listener registrations, like a DOM document or window.
type EventTarget interface {
	AddEventListener(eventType string, listener EventListener, useCapture bool)
}

// Window is the top-level event target of a host page.
type Window interface {
	EventTarget
	Location() string
}

// Element is a node of the host page that a click can target.
type Element interface {
	TagName() string
	Attribute(name string) (string, bool)
	TextContent() string
	// Parent returns nil for the topmost element.
	Parent() Element
}

// Host is the environment a beacon runs in. It replaces ambient browser globals
// with an explicit capability supplied at construction.
type Host interface {
	Navigator() Navigator
	Timezone() string
	// Location returns the current page URL, or "" when the host has none.
	Location() string
	Now() time.Time
	// Document returns nil when the host has no page to capture clicks from.
	Document() EventTarget
	// Window returns nil when the host has no window to capture errors from.
	Window() Window
}

const (
	ClickEventType         = "click"
	ErrorEventType         = "error"
	UnhandledRejectionType = "unhandledrejection"
	PanicEventType         = "panic"
)

// ClickEvent is a pointer click on Target.
type ClickEvent struct {
	Target Element
}

// Type implements Event.
func (ClickEvent) Type() string { return ClickEventType }

// ErrorEvent describes an uncaught error or an unhandled rejection.
type ErrorEvent struct {
	Kind    string // ErrorEventType, UnhandledRejectionType or PanicEventType
	Error   any
	Message string
	Reason  any
	// Stack is used when the error value does not carry its own stack.
	Stack string
}

// Type implements Event.
func (e ErrorEvent) Type() string {
	if e.Kind == "" {
		return ErrorEventType
	}
	return e.Kind
}
