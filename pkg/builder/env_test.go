package builder

import (
	"os"
	"strings"
	"testing"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

func TestEnvOr(t *testing.T) {
	const key = "LOGGERHEAD_TEST_ENV_OR"
	_ = os.Unsetenv(key)
	if got := EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	if err := os.Setenv(key, `"  value  "`); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if got := EnvOr(key, "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestEnvIntOr(t *testing.T) {
	const key = "LOGGERHEAD_TEST_ENV_INT"
	_ = os.Unsetenv(key)
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default int, got %d", got)
	}

	if err := os.Setenv(key, "12"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if got := EnvIntOr(key, 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}

	if err := os.Setenv(key, "not-int"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default on bad int, got %d", got)
	}
}

func TestBeaconOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "https://collector.example.com/log")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvApplicationName, "storefront")
	t.Setenv(EnvApplicationVersion, "")
	t.Setenv(EnvTenantID, "acme")

	opts := BeaconOptionsFromEnv()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}

	rec := NewRecorder()
	b := NewBeacon(NewHost(), append(opts, BeaconWithTransport(rec))...)

	if got := b.Endpoint(); got != "https://collector.example.com/log" {
		t.Fatalf("unexpected endpoint %q", got)
	}
	if got := b.Threshold(); got != types.SeverityWarn {
		t.Fatalf("expected warn threshold, got %s", got)
	}

	if err := b.Info("ignored", "", nil); err != nil {
		t.Fatalf("info: %v", err)
	}
	if err := b.Warn("kept", "", nil); err != nil {
		t.Fatalf("warn: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("expected 1 beacon, got %d", rec.Len())
	}

	encoded, ok := EncodedPayload(rec.Last())
	if !ok || !strings.HasPrefix(rec.Last(), "https://collector.example.com/log?d=") {
		t.Fatalf("unexpected beacon url %q", rec.Last())
	}
	p, err := DecodePayload(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ApplicationName == nil || *p.ApplicationName != "storefront" {
		t.Fatalf("unexpected application name %v", p.ApplicationName)
	}
	if p.TenantID == nil || *p.TenantID != "acme" {
		t.Fatalf("unexpected tenant %v", p.TenantID)
	}
	if p.ApplicationVersion != nil {
		t.Fatalf("expected null application version, got %q", *p.ApplicationVersion)
	}
}

func TestTransportOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvTimeoutMS, "")
	if opts := TransportOptionsFromEnv(); len(opts) != 0 {
		t.Fatalf("expected no options, got %d", len(opts))
	}

	t.Setenv(EnvTimeoutMS, "250")
	if opts := TransportOptionsFromEnv(); len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d", len(opts))
	}
}
