package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// Send issues a GET for url on a separate goroutine and returns immediately.
// The response is drained and discarded; failures are only visible in debug logs.
func (t *HTTPBeacon) Send(url string) {
	cfg := t.snapshotConfig()

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		t.fetch(cfg, url)
	}()
}

// Wait blocks until every beacon sent so far has finished.
func (t *HTTPBeacon) Wait() {
	t.inflight.Wait()
}

func (t *HTTPBeacon) fetch(cfg sendConfig, url string) {
	ctx, cancel := context.WithTimeout(t.ctx, cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.NotifyLoggers(types.DebugLevel, "beacon request could not be built",
			"component", t.GetComponentMetadata(),
			"event", "Send",
			"error", err,
		)
		return
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		t.NotifyLoggers(types.DebugLevel, "beacon request failed",
			"component", t.GetComponentMetadata(),
			"event", "Send",
			"error", err,
		)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	t.NotifyLoggers(types.DebugLevel, "beacon delivered",
		"component", t.GetComponentMetadata(),
		"event", "Send",
		"status", resp.StatusCode,
	)
}
