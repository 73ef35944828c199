package beacon

import "github.com/joeydtaylor/loggerhead/pkg/internal/types"

// TrackClicks subscribes to clicks on the host document in capture phase.
// Only the first call registers a listener.
func (b *Beacon) TrackClicks() {
	doc := b.host.Document()
	if doc == nil {
		b.NotifyLoggers(types.WarnLevel, "host has no document, clicks are not tracked",
			"component", b.GetComponentMetadata(),
		)
		return
	}

	b.captureLock.Lock()
	if b.clicksInitialized {
		b.captureLock.Unlock()
		b.NotifyLoggers(types.WarnLevel, "click handler already initialized",
			"component", b.GetComponentMetadata(),
		)
		return
	}
	b.clicksInitialized = true
	b.captureLock.Unlock()

	doc.AddEventListener(types.ClickEventType, func(e types.Event) {
		if click, ok := e.(types.ClickEvent); ok {
			b.HandleClick(click)
		}
	}, true)
}

// TrackExceptions subscribes to uncaught errors and unhandled rejections on the
// host window in capture phase. Only the first call registers listeners.
func (b *Beacon) TrackExceptions() {
	win := b.host.Window()
	if win == nil {
		b.NotifyLoggers(types.WarnLevel, "host has no window, exceptions are not tracked",
			"component", b.GetComponentMetadata(),
		)
		return
	}

	b.captureLock.Lock()
	if b.exceptionsInitialized {
		b.captureLock.Unlock()
		b.NotifyLoggers(types.WarnLevel, "exception handlers already initialized",
			"component", b.GetComponentMetadata(),
		)
		return
	}
	b.exceptionsInitialized = true
	b.captureLock.Unlock()

	listener := func(e types.Event) {
		if ev, ok := e.(types.ErrorEvent); ok {
			b.HandleError(ev)
		}
	}
	win.AddEventListener(types.ErrorEventType, listener, true)
	win.AddEventListener(types.UnhandledRejectionType, listener, true)
}
