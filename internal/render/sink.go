package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

const defaultWidth = 100

// Sink is the append-only destination for rendered output. The first write
// error is kept and every later write is dropped.
type Sink struct {
	w        io.Writer
	colorize bool
	width    int
	renderer *lipgloss.Renderer
	err      error
}

// SinkOption customizes a Sink.
type SinkOption func(*Sink)

// WithColor forces colour on or off instead of probing the writer.
func WithColor(enabled bool) SinkOption {
	return func(s *Sink) {
		s.colorize = enabled
	}
}

// WithWidth caps the width of panels and rules.
func WithWidth(width int) SinkOption {
	return func(s *Sink) {
		if width > 20 {
			s.width = width
		}
	}
}

// NewSink wraps w. Colour is enabled only when w is a terminal.
func NewSink(w io.Writer, opts ...SinkOption) *Sink {
	s := &Sink{
		w:        w,
		colorize: ShouldColorize(w),
		width:    defaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = lipgloss.NewRenderer(w)
	return s
}

// ShouldColorize reports whether writer is an interactive terminal.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorize reports whether styled output is enabled.
func (s *Sink) Colorize() bool {
	return s.colorize
}

// Err returns the first write error.
func (s *Sink) Err() error {
	return s.err
}

// Println writes text followed by a newline.
func (s *Sink) Println(text string) {
	if s.err != nil {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, s.err = io.WriteString(s.w, text)
}

// Rule writes a horizontal rule with a centred label.
func (s *Sink) Rule(label string) {
	label = strings.TrimSpace(label)
	fill := s.width - runewidth.StringWidth(label) - 2
	if fill < 4 {
		fill = 4
	}
	left := fill / 2
	line := strings.Repeat("─", left) + " " + label + " " + strings.Repeat("─", fill-left)
	if s.colorize {
		line = s.renderer.NewStyle().Foreground(lipglossColor("magenta")).Render(line)
	}
	s.Println(line)
}
