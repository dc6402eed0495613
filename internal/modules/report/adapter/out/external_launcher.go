package out

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	reportout "symptrack/internal/modules/report/port/out"
	apperrors "symptrack/internal/platform/errors"
)

// OSLauncher hands a written chart or report to the desktop's default viewer.
type OSLauncher struct {
	goos     string
	lookPath func(string) (string, error)
}

func NewOSLauncher() reportout.Launcher {
	return &OSLauncher{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Open starts the viewer and returns without waiting for it to exit.
func (l *OSLauncher) Open(_ context.Context, target string) error {
	if _, err := os.Stat(target); err != nil {
		return apperrors.WrapIO("open viewer for", target, err)
	}
	argv, err := viewerCommand(l.goos, target)
	if err != nil {
		return apperrors.WrapIO("open viewer for", target, err)
	}
	bin, err := l.lookPath(argv[0])
	if err != nil {
		return apperrors.WrapIO("open viewer for", target, fmt.Errorf("%s not found on PATH", argv[0]))
	}
	cmd := exec.Command(bin, argv[1:]...)
	if err := cmd.Start(); err != nil {
		return apperrors.WrapIO("open viewer for", target, err)
	}
	// Reap the child so a long-lived TUI does not collect zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}

func viewerCommand(goos, target string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"open", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", target}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", target}, nil
	}
	return nil, fmt.Errorf("no default viewer on %s", goos)
}
