package logging

import (
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// New returns the application logger. Unknown levels fall back to warn so a
// typo in the config file never silences errors.
func New(level string, out io.Writer) hclog.Logger {
	if out == nil {
		out = os.Stderr
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "symptrack",
		Level:  lvl,
		Output: out,
	})
}
