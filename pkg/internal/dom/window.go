package dom

import (
	"sync"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// Window is the top-level event target of the page.
type Window struct {
	eventTarget
	hrefLock sync.Mutex
	href     string
}

// NewWindow returns a window currently showing href.
func NewWindow(href string) *Window {
	return &Window{href: href}
}

// Location implements types.Window.
func (w *Window) Location() string {
	w.hrefLock.Lock()
	defer w.hrefLock.Unlock()
	return w.href
}

// Navigate changes the current location.
func (w *Window) Navigate(href string) {
	w.hrefLock.Lock()
	w.href = href
	w.hrefLock.Unlock()
}

// ReportError raises an uncaught error.
func (w *Window) ReportError(err any) {
	w.Dispatch(types.ErrorEvent{Kind: types.ErrorEventType, Error: err})
}

// ReportErrorMessage raises an uncaught error that only carries a message, as
// cross-origin script errors do.
func (w *Window) ReportErrorMessage(message string) {
	w.Dispatch(types.ErrorEvent{Kind: types.ErrorEventType, Message: message})
}

// RejectPromise raises an unhandled rejection.
func (w *Window) RejectPromise(reason any) {
	w.Dispatch(types.ErrorEvent{Kind: types.UnhandledRejectionType, Reason: reason})
}
