package host_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/joeydtaylor/loggerhead/pkg/internal/dom"
	"github.com/joeydtaylor/loggerhead/pkg/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	h := host.New()
	assert.Equal(t, "UTC", h.Timezone())
	assert.Equal(t, "", h.Location())
	assert.Nil(t, h.Document())
	assert.Nil(t, h.Window())
	assert.WithinDuration(t, time.Now(), h.Now(), time.Minute)
}

func TestNew_Options(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	doc := dom.NewDocument(nil)

	h := host.New(
		host.WithNavigator("linux", "ubuntu", "node"),
		host.WithTimezone("Europe/Berlin"),
		host.WithTimezone(""),
		host.WithLocation("http://altavista.com"),
		host.WithClock(func() time.Time { return fixed }),
		host.WithDocument(doc),
		nil,
	)

	nav := h.Navigator()
	assert.Equal(t, "linux", nav.Platform)
	assert.Equal(t, "ubuntu", nav.Vendor)
	assert.Equal(t, "node", nav.UserAgent)
	assert.Equal(t, "Europe/Berlin", h.Timezone())
	assert.Equal(t, "http://altavista.com", h.Location())
	assert.Equal(t, fixed, h.Now())
	assert.NotNil(t, h.Document())
}

func TestLocation_PrefersWindow(t *testing.T) {
	win := dom.NewWindow("https://app.example.com/a")
	h := host.New(host.WithLocation("http://static"), host.WithWindow(win))

	assert.Equal(t, "https://app.example.com/a", h.Location())
	win.Navigate("https://app.example.com/b")
	assert.Equal(t, "https://app.example.com/b", h.Location())
}

func TestSystem_DetectsNavigator(t *testing.T) {
	t.Setenv("TZ", "America/New_York")

	h, err := host.System(host.WithLocation("app://cli"))
	require.NoError(t, err)

	nav := h.Navigator()
	assert.NotEmpty(t, nav.Platform)
	assert.Contains(t, nav.UserAgent, "loggerhead (")
	assert.Equal(t, "America/New_York", h.Timezone())
	assert.Equal(t, "app://cli", h.Location())
}
