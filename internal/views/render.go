// Package views renders the application frame and the per-screen panels as
// plain text, keeping terminal styling out of the update layer.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Task lists carry name, frequency and due labels on one line, so the list
// pane gets the wider share of the split.
const (
	listPaneWidth   = 66
	detailPaneWidth = 48
)

type AppData struct {
	Header            string
	ListPane          string
	DetailPane        string
	StatusLine        string
	StatusIsError     bool
	Notification      string
	NotificationLevel string
	Footer            string
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	listPaneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(listPaneWidth)
	detailPaneStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(detailPaneWidth)
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle     = lipgloss.NewStyle().Faint(true)
)

// RenderApp assembles the frame: header, the list/detail pane pair, status
// line, the latest notification, and the key footer. Empty sections collapse
// rather than leaving blank lines.
func RenderApp(data AppData) string {
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listPaneStyle.Render(data.ListPane),
		detailPaneStyle.Render(data.DetailPane),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Header))
	b.WriteString("\n")
	b.WriteString(panes)
	if data.StatusLine != "" {
		style := statusOKStyle
		if data.StatusIsError {
			style = statusErrStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(data.StatusLine))
	}
	if notice := renderNotice(data.NotificationLevel, data.Notification); notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
	}
	if data.Footer != "" {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(data.Footer))
	}
	return b.String()
}

func renderNotice(level, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if level == "" {
		level = "info"
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

// RenderMarkdown renders a notes body through glamour's dark style, falling
// back to the raw text when rendering fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
