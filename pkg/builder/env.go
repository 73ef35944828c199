package builder

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/beacon"
	"github.com/joeydtaylor/loggerhead/pkg/internal/transport"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

// Environment variables read by BeaconOptionsFromEnv and TransportOptionsFromEnv.
const (
	EnvEndpoint           = "LOGGERHEAD_ENDPOINT"
	EnvLogLevel           = "LOGGERHEAD_LOG_LEVEL"
	EnvApplicationName    = "LOGGERHEAD_APPLICATION_NAME"
	EnvApplicationVersion = "LOGGERHEAD_APPLICATION_VERSION"
	EnvTenantID           = "LOGGERHEAD_TENANT_ID"
	EnvTimeoutMS          = "LOGGERHEAD_TIMEOUT_MS"
)

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// BeaconOptionsFromEnv returns options for every LOGGERHEAD_* beacon variable that is set.
// Unset variables produce no option, so the result can be layered under explicit options.
func BeaconOptionsFromEnv() []types.Option[types.Beacon] {
	var opts []types.Option[types.Beacon]
	if v := EnvOr(EnvEndpoint, ""); v != "" {
		opts = append(opts, beacon.WithEndpoint(v))
	}
	if v := EnvOr(EnvLogLevel, ""); v != "" {
		opts = append(opts, beacon.WithLogLevel(strings.ToLower(v)))
	}
	if v := EnvOr(EnvApplicationName, ""); v != "" {
		opts = append(opts, beacon.WithApplicationName(v))
	}
	if v := EnvOr(EnvApplicationVersion, ""); v != "" {
		opts = append(opts, beacon.WithApplicationVersion(v))
	}
	if v := EnvOr(EnvTenantID, ""); v != "" {
		opts = append(opts, beacon.WithTenantID(v))
	}
	return opts
}

// TransportOptionsFromEnv returns HTTP transport options from LOGGERHEAD_TIMEOUT_MS.
func TransportOptionsFromEnv() []types.Option[types.BeaconTransport] {
	var opts []types.Option[types.BeaconTransport]
	if ms := EnvIntOr(EnvTimeoutMS, 0); ms > 0 {
		opts = append(opts, transport.WithTimeout(time.Duration(ms)*time.Millisecond))
	}
	return opts
}
