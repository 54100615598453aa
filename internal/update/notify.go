package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

const maxNotifications = 40

// notify records n in the notification log and returns a command that
// delivers it to the desktop, or nil when desktop delivery is off.
func (m *Model) notify(title, body, level string) tea.Cmd {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	if !m.DesktopEnabled || m.notifier == nil {
		return nil
	}
	return sendDesktopCmd(m.notifier, n)
}

func sendDesktopCmd(notifier DesktopNotifier, n Notification) tea.Cmd {
	return func() tea.Msg {
		if err := notifier.Send(n); err != nil {
			return AppErrorMsg{Err: fmt.Errorf("desktop notification %q: %w", n.Title, err)}
		}
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
