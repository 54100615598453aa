package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Gamified     bool
	Header       string
	Stats        string
	Body         string
	Sidebar      string
	StatusLine   string
	Toast        string
	Footer       string
	IsError      bool
	ContentWidth int
}

type palette struct {
	header lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	panel  lipgloss.Style
	toast  lipgloss.Style
	footer lipgloss.Style
}

var (
	plainPalette = palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		toast:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	gamifiedPalette = palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		panel:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("94")).Padding(0, 1),
		toast:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 1),
		footer: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
)

func paletteFor(gamified bool) palette {
	if gamified {
		return gamifiedPalette
	}
	return plainPalette
}

func RenderApp(data AppData) string {
	p := paletteFor(data.Gamified)
	width := data.ContentWidth
	if width <= 0 {
		width = 58
	}

	body := p.panel.Width(width).Render(data.Body)
	row := body
	if strings.TrimSpace(data.Sidebar) != "" {
		side := p.panel.Width(width / 2).Render(data.Sidebar)
		row = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	lines := []string{p.header.Render(data.Header)}
	if data.Stats != "" {
		lines = append(lines, data.Stats)
	}
	lines = append(lines, row)
	if data.Toast != "" {
		lines = append(lines, p.toast.Render(data.Toast))
	}
	if data.StatusLine != "" {
		status := p.status.Render(data.StatusLine)
		if data.IsError {
			status = p.err.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, p.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, gamified bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if gamified {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
