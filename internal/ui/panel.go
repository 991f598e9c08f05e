package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a bar with a done/total counter.
func (c *Console) ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(c.theme.BarFull, filled) + strings.Repeat(c.theme.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d done", bar, done, total)
}

// Panel draws lines inside a framed box using the current theme.
func (c *Console) Panel(lines []string) {
	box := c.r.NewStyle().
		Border(c.theme.Border).
		BorderForeground(c.theme.BorderColor).
		Padding(0, 1)
	fmt.Fprintln(c.out, box.Render(strings.Join(lines, "\n")))
}
