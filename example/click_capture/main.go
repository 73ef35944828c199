package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/loggerhead/pkg/builder"
)

const page = `<html><body>
<header data-track="site-header"><a id="logo" href="/"><img alt="Loggerhead" src="/logo.svg"></a></header>
<main>
  <button id="buy" class="btn btn-primary">Buy now</button>
  <span id="star" class="icon-star"></span>
</main>
</body></html>`

// Dispatches clicks and errors through an in-memory page and prints what the beacon sent.
func main() {
	doc, err := builder.ParseDocument(strings.NewReader(page))
	if err != nil {
		panic(err)
	}
	win := builder.NewWindow("https://shop.example.com/product/42")

	rec := builder.NewRecorder()
	beacon := builder.NewBeacon(
		builder.NewHost(
			builder.HostWithNavigator("MacIntel", "Apple Computer, Inc.", "Mozilla/5.0 (Macintosh)"),
			builder.HostWithTimezone("Europe/Amsterdam"),
			builder.HostWithDocument(doc),
			builder.HostWithWindow(win),
		),
		builder.BeaconWithEndpoint("https://collector.example.com/log"),
		builder.BeaconWithTransport(rec),
	)

	beacon.TrackClicks()
	beacon.TrackExceptions()

	for _, id := range []string{"logo", "buy", "star"} {
		doc.Click(doc.ElementByID(id))
	}
	win.ReportError(errors.New("cannot read property 'price' of undefined"))
	win.ReportErrorMessage("Script error.")
	win.RejectPromise("fetch /api/cart failed")

	for _, url := range rec.URLs() {
		encoded, _ := builder.EncodedPayload(url)
		p, err := builder.DecodePayload(encoded)
		if err != nil {
			fmt.Println("decode:", err)
			continue
		}
		fmt.Printf("#%d %-5s %-18s %q\n", p.SequenceNumber, p.LogLevel, p.EventName, p.Context)
	}
}
