package builder

import (
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/host"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// NewHost returns a configurable host environment.
func NewHost(options ...types.Option[*host.Host]) *host.Host {
	return host.New(options...)
}

// SystemHost describes the current machine, for beacons embedded in services and CLIs.
func SystemHost(options ...types.Option[*host.Host]) (*host.Host, error) {
	return host.System(options...)
}

func HostWithNavigator(platform, vendor, userAgent string) types.Option[*host.Host] {
	return host.WithNavigator(platform, vendor, userAgent)
}

func HostWithTimezone(tz string) types.Option[*host.Host] {
	return host.WithTimezone(tz)
}

func HostWithLocation(href string) types.Option[*host.Host] {
	return host.WithLocation(href)
}

func HostWithClock(clock func() time.Time) types.Option[*host.Host] {
	return host.WithClock(clock)
}

func HostWithDocument(doc types.EventTarget) types.Option[*host.Host] {
	return host.WithDocument(doc)
}

func HostWithWindow(win types.Window) types.Option[*host.Host] {
	return host.WithWindow(win)
}
