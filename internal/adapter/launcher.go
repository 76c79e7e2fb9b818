package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// Launcher opens web links in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger
}

// openCommand is one way to hand a URL to the desktop
type openCommand struct {
	path string
	args []string // placed before the URL
}

// systemOpeners lists, per platform, the commands tried in order
var systemOpeners = map[string][]openCommand{
	"darwin":  {{path: "open"}},
	"windows": {{path: "cmd", args: []string{"/c", "start", ""}}, {path: "rundll32", args: []string{"url.dll,FileProtocolHandler"}}},
	"linux":   {{path: "xdg-open"}, {path: "gio", args: []string{"open"}}, {path: "sensible-browser"}},
}

// NewLauncher creates a Launcher. An empty command uses the system default.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{command: command, args: args, logger: logger}
}

// Open launches rawURL without waiting for the browser to exit
func (l *Launcher) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open %q: not a web URL", rawURL)
	}

	// Tier 1: User configured a specific browser
	if l.command != "" {
		args := append(append([]string{}, l.args...), rawURL)
		l.logger.Info("opening link with configured browser", "command", l.command, "url", rawURL)
		return exec.Command(l.command, args...).Start()
	}

	// Tier 2: Platform openers, in order
	candidates, ok := systemOpeners[runtime.GOOS]
	if !ok {
		candidates = systemOpeners["linux"]
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.path); err != nil {
			l.logger.Debug("opener not available", "path", c.path, "error", err)
			continue
		}
		args := append(append([]string{}, c.args...), rawURL)
		l.logger.Info("opening link with system default", "os", runtime.GOOS, "path", c.path, "url", rawURL)
		return exec.Command(c.path, args...).Start()
	}

	return fmt.Errorf("no way to open links on %s", runtime.GOOS)
}
