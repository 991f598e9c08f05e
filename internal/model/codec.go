package model

import (
	"errors"
	"fmt"
	"strings"
)

// Line markers. The state is encoded as a fixed 4-byte prefix with no escaping,
// so a description that itself starts with a marker reads back differently.
const (
	MarkerDone    = "[x] "
	MarkerPending = "[ ] "
)

// ErrInvalidFormat is matched by every *ParseError.
var ErrInvalidFormat = errors.New("invalid todo line format")

// ParseError reports a stored line without a valid marker prefix.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidFormat, e.Line)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidFormat }

// ParseItem decodes one stored line.
func ParseItem(line string) (Item, error) {
	switch {
	case strings.HasPrefix(line, MarkerDone):
		return Item{Completed: true, Description: line[len(MarkerDone):]}, nil
	case strings.HasPrefix(line, MarkerPending):
		return Item{Description: line[len(MarkerPending):]}, nil
	}
	return Item{}, &ParseError{Line: line}
}

// ParseList decodes a whole file. Lines that fail to parse are reported to
// onSkip with their 1-based line number and left out; the rest still load.
// onSkip may be nil.
func ParseList(text string, onSkip func(lineNo int, err error)) []Item {
	items := []Item{}
	if text == "" {
		return items
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		it, err := ParseItem(strings.TrimSuffix(line, "\r"))
		if err != nil {
			if onSkip != nil {
				onSkip(i+1, err)
			}
			continue
		}
		items = append(items, it)
	}
	return items
}

// FormatItem renders an item as its stored line.
func FormatItem(it Item) string {
	if it.Completed {
		return MarkerDone + it.Description
	}
	return MarkerPending + it.Description
}

// FormatList renders items one per line, joined by "\n" with no trailing newline.
func FormatList(items []Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = FormatItem(it)
	}
	return strings.Join(lines, "\n")
}
