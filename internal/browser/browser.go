// Package browser opens URLs in the user's default browser without
// blocking the event loop.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the platform's URL handler and returns once the
// process has started; it never waits for the browser.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
