package draglist

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Text is a simple multi-line text item. Lines are not wrapped; text wider
// than the item is truncated.
type Text struct {
	*Box

	lines     []string
	style     tcell.Style
	alignment Alignment
}

// NewText returns a new text item displaying the given text.
func NewText(text string) *Text {
	return &Text{
		Box:   NewBox(),
		lines: strings.Split(text, "\n"),
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetText replaces the displayed text.
func (t *Text) SetText(text string) *Text {
	lines := strings.Split(text, "\n")
	if !slices.Equal(t.lines, lines) {
		t.lines = lines
		t.MarkDirty()
	}
	return t
}

// GetText returns the displayed text.
func (t *Text) GetText() string {
	return strings.Join(t.lines, "\n")
}

// SetStyle sets the style of the text.
func (t *Text) SetStyle(style tcell.Style) *Text {
	if t.style != style {
		t.style = style
		t.MarkDirty()
	}
	return t
}

// SetAlignment sets the horizontal alignment of the text.
func (t *Text) SetAlignment(alignment Alignment) *Text {
	if t.alignment != alignment {
		t.alignment = alignment
		t.MarkDirty()
	}
	return t
}

// Height returns the height needed to display the text at the given width.
func (t *Text) Height(width int) int {
	return max(len(t.lines), 1)
}

// Draw draws this primitive onto the screen.
func (t *Text) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	for i, line := range t.lines {
		if i >= height {
			break
		}
		printWithStyle(screen, line, x, y+i, width, t.alignment, t.style)
	}
}

var _ Item = &Text{}
