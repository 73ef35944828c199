package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeydtaylor/loggerhead/pkg/builder"
)

// Runs a beacon against a local collector that prints every decoded payload.
// LOGGERHEAD_* variables override the example configuration.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encoded, _ := builder.EncodedPayload(r.URL.String())
		p, err := builder.DecodePayload(encoded)
		if err != nil {
			fmt.Println("bad beacon:", err)
			return
		}
		fmt.Printf("collector received %s/%s seq=%d context=%q details=%s\n",
			p.LogLevel, p.EventName, p.SequenceNumber, p.Context, p.Details)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer collector.Close()

	logger := builder.NewLogger(builder.LoggerWithLevel("debug"), builder.LoggerWithComponent("example"))
	defer logger.Flush()

	transport := builder.NewHTTPBeacon(ctx, append(builder.TransportOptionsFromEnv(),
		builder.HTTPBeaconWithLogger(logger),
	)...)

	var host builder.Host = builder.NewHost(builder.HostWithLocation("app://example/basic"))
	if sys, err := builder.SystemHost(builder.HostWithLocation("app://example/basic")); err == nil {
		host = sys
	} else {
		fmt.Fprintln(os.Stderr, "using a bare host:", err)
	}

	beacon := builder.NewBeacon(host,
		builder.BeaconWithEndpoint(collector.URL),
		builder.BeaconWithLogLevel("debug"),
		builder.BeaconWithApplicationName("basic-example"),
		builder.BeaconWithApplicationVersion("1.0.0"),
		builder.BeaconWithDetails(map[string]any{"build": "dev"}),
		builder.BeaconWithTransport(transport),
		builder.BeaconWithLogger(logger),
	)
	beacon.Configure(builder.BeaconOptionsFromEnv()...)

	// The user id becomes known after sign in.
	beacon.Configure(builder.BeaconWithUserID("u1"), builder.BeaconWithDisplayName("Ada"))

	_ = beacon.Trace("filtered", "", nil)
	_ = beacon.Info("signed_in", "password", map[string]any{"attempts": 1})
	_ = beacon.Warn("cart_full", "limit 20", nil)

	if err := beacon.Error("", "", nil); errors.Is(err, builder.ErrEmptyEvent) {
		fmt.Println("rejected:", err)
	}

	func() {
		defer func() { _ = recover() }()
		defer beacon.ReportPanic()
		panic("checkout crashed")
	}()

	transport.Wait()
	fmt.Println("sent", beacon.SequenceNumber(), "beacons from instance", beacon.InstanceID())
}
