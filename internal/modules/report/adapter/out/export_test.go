package out

import reportout "symptrack/internal/modules/report/port/out"

// NewLauncherFor builds a launcher for goos that resolves viewers with lookPath.
func NewLauncherFor(goos string, lookPath func(string) (string, error)) reportout.Launcher {
	return &OSLauncher{goos: goos, lookPath: lookPath}
}
