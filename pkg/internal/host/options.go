package host

import (
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// WithNavigator sets the platform, vendor and user agent strings.
func WithNavigator(platform, vendor, userAgent string) types.Option[*Host] {
	return func(h *Host) {
		h.navigator = types.Navigator{Platform: platform, Vendor: vendor, UserAgent: userAgent}
	}
}

// WithTimezone sets the IANA timezone name reported in payloads.
func WithTimezone(tz string) types.Option[*Host] {
	return func(h *Host) {
		if tz != "" {
			h.timezone = tz
		}
	}
}

// WithLocation sets the page URL used when the host has no window.
func WithLocation(href string) types.Option[*Host] {
	return func(h *Host) {
		h.location = href
	}
}

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) types.Option[*Host] {
	return func(h *Host) {
		if clock != nil {
			h.clock = clock
		}
	}
}

// WithDocument attaches the document clicks are captured on.
func WithDocument(doc types.EventTarget) types.Option[*Host] {
	return func(h *Host) {
		h.document = doc
	}
}

// WithWindow attaches the window errors are captured on.
func WithWindow(win types.Window) types.Option[*Host] {
	return func(h *Host) {
		h.window = win
	}
}
