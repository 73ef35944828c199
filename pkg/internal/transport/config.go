package transport

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// SetTimeout updates the per-beacon timeout. Non-positive values are ignored.
func (t *HTTPBeacon) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	t.configLock.Lock()
	t.timeout = timeout
	if t.httpClient != nil {
		t.httpClient.Timeout = timeout
	}
	t.configLock.Unlock()
}

// SetHTTPClient replaces the underlying client. A nil client is ignored.
func (t *HTTPBeacon) SetHTTPClient(client *http.Client) {
	if client == nil {
		return
	}
	t.configLock.Lock()
	t.httpClient = client
	t.configLock.Unlock()
}

// ConnectLogger attaches loggers for transport events.
func (t *HTTPBeacon) ConnectLogger(l ...types.Logger) {
	if len(l) == 0 {
		return
	}
	t.loggersLock.Lock()
	t.loggers = append(t.loggers, l...)
	t.loggersLock.Unlock()
}

// GetComponentMetadata returns the transport metadata.
func (t *HTTPBeacon) GetComponentMetadata() types.ComponentMetadata {
	t.configLock.Lock()
	defer t.configLock.Unlock()
	return t.componentMetadata
}

// SetComponentMetadata updates the transport metadata.
func (t *HTTPBeacon) SetComponentMetadata(name string, id string) {
	t.configLock.Lock()
	t.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: t.componentMetadata.Type}
	t.configLock.Unlock()
}

type sendConfig struct {
	client  *http.Client
	timeout time.Duration
}

func (t *HTTPBeacon) snapshotConfig() sendConfig {
	t.configLock.Lock()
	defer t.configLock.Unlock()
	return sendConfig{client: t.httpClient, timeout: t.timeout}
}

func (t *HTTPBeacon) snapshotLoggers() []types.Logger {
	t.loggersLock.Lock()
	defer t.loggersLock.Unlock()
	if len(t.loggers) == 0 {
		return nil
	}
	return append([]types.Logger(nil), t.loggers...)
}
