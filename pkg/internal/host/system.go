package host

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	gopsutilhost "github.com/shirou/gopsutil/host"
)

// System returns a Host describing the machine the process runs on. Platform is
// the operating system, vendor the distribution and the user agent names both
// plus the Go runtime. Options are applied after the detected defaults.
func System(options ...types.Option[*Host]) (*Host, error) {
	info, err := gopsutilhost.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read host information: %w", err)
	}

	defaults := []types.Option[*Host]{
		WithNavigator(info.OS, info.Platform, systemUserAgent(info)),
		WithTimezone(localTimezone()),
	}
	return New(append(defaults, options...)...), nil
}

func systemUserAgent(info *gopsutilhost.InfoStat) string {
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	return fmt.Sprintf("loggerhead (%s %s; %s %s; %s)", info.Platform, info.PlatformVersion, info.OS, arch, runtime.Version())
}

// localTimezone prefers TZ, then the local zone name, then UTC.
func localTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	return "UTC"
}
