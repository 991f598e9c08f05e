// Package ui renders console output for the menu session.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options select the theme and whether color is allowed at all.
type Options struct {
	Theme   string
	NoColor bool
}

// Console writes styled output. Color support is detected from out, so a
// non-terminal writer (file, pipe, buffer) always gets plain text.
type Console struct {
	out, err io.Writer
	r        *lipgloss.Renderer
	theme    Theme
}

func New(out, errOut io.Writer, opt Options) *Console {
	r := lipgloss.NewRenderer(out)
	th := NewTheme(r, opt.Theme)
	if opt.NoColor || th.Mono {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{out: out, err: errOut, r: r, theme: th}
}

func (c *Console) Theme() Theme { return c.theme }

func (c *Console) Out() io.Writer { return c.out }

func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

func (c *Console) OK(msg string) {
	fmt.Fprintln(c.out, c.theme.Success.Render(c.theme.SymOK+" "+msg))
}

func (c *Console) Fail(msg string) {
	fmt.Fprintln(c.err, c.theme.Error.Render(c.theme.SymFail+" "+msg))
}

func (c *Console) Muted(s string) string  { return c.theme.Muted.Render(s) }
func (c *Console) Title(s string) string  { return c.theme.Title.Render(s) }
func (c *Console) Accent(s string) string { return c.theme.Accent.Render(s) }
