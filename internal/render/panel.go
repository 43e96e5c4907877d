package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

// Panel writes body inside a rounded box whose top border carries title.
// A blank body writes nothing.
func (s *Sink) Panel(title, body, style string) {
	body = strings.TrimRight(body, " \t\r\n")
	if strings.TrimSpace(body) == "" {
		return
	}
	maxInner := s.width - 4
	title = runewidth.Truncate(strings.TrimSpace(title), maxInner-2, "…")
	titleWidth := runewidth.StringWidth(title)

	inner := lipgloss.Width(body)
	if inner < titleWidth+2 {
		inner = titleWidth + 2
	}
	if inner > maxInner {
		inner = maxInner
	}

	border := lipgloss.RoundedBorder()
	box := s.renderer.NewStyle().
		Border(border).
		BorderTop(false).
		Padding(0, 1).
		Width(inner + 2)
	color := lipglossColor(style)
	if s.colorize && color != "" {
		box = box.BorderForeground(color)
	}
	rendered := box.Render(body)

	total := lipgloss.Width(rendered)
	fill := total - 5 - titleWidth
	if fill < 0 {
		fill = 0
	}
	top := border.TopLeft + border.Top + " " + title + " " + strings.Repeat(border.Top, fill) + border.TopRight
	if s.colorize && color != "" {
		top = s.renderer.NewStyle().Foreground(color).Bold(true).Render(top)
	}
	s.Println(top + "\n" + rendered)
}

var styleColors = map[string]struct {
	terminal lipgloss.Color
	table    text.Color
}{
	"red":     {"1", text.FgRed},
	"green":   {"2", text.FgGreen},
	"yellow":  {"3", text.FgYellow},
	"blue":    {"4", text.FgBlue},
	"magenta": {"5", text.FgMagenta},
	"cyan":    {"6", text.FgCyan},
	"white":   {"7", text.FgWhite},
}

// lipglossColor picks the colour word out of a style tag such as "bold cyan".
func lipglossColor(style string) lipgloss.Color {
	for _, word := range strings.Fields(strings.ToLower(style)) {
		if c, ok := styleColors[word]; ok {
			return c.terminal
		}
	}
	return ""
}

func tableColors(style string) text.Colors {
	var colors text.Colors
	for _, word := range strings.Fields(strings.ToLower(style)) {
		if word == "bold" {
			colors = append(colors, text.Bold)
			continue
		}
		if c, ok := styleColors[word]; ok {
			colors = append(colors, c.table)
		}
	}
	return colors
}
