package reminder

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// DesktopNotifier presents a single notification to the user. Availability
// stands in for notification authorization on the desktop: when the platform
// tool is missing, delivery silently does nothing.
type DesktopNotifier interface {
	Available() bool
	Send(title, body string) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Available() bool        { return false }
func (NoopDesktopNotifier) Send(_, _ string) error { return nil }

// ExecDesktopNotifier shells out to the platform notification tool.
type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Available() bool {
	switch runtime.GOOS {
	case "linux":
		_, err := exec.LookPath("notify-send")
		return err == nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err == nil
	default:
		return false
	}
}

func (ExecDesktopNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
