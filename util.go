package draglist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. It returns the screen width of the printed text.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) int {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color))
}

// printWithStyle works like [Print] but it takes a style instead of just a
// foreground color. Text that does not fit into maxWidth is truncated on the
// right, grapheme cluster by grapheme cluster.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	if maxWidth <= 0 || text == "" {
		return 0
	}

	if textWidth := uniseg.StringWidth(text); textWidth < maxWidth {
		switch alignment {
		case AlignmentCenter:
			x += (maxWidth - textWidth) / 2
		case AlignmentRight:
			x += maxWidth - textWidth
		}
	}

	printed := 0
	for gr := uniseg.NewGraphemes(text); gr.Next(); {
		width := uniseg.StringWidth(gr.Str())
		if width == 0 {
			continue
		}
		if printed+width > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+printed, y, runes[0], runes[1:], style)
		// Populate follow-up cells of wide clusters to avoid stale content.
		for offset := 1; offset < width; offset++ {
			screen.SetContent(x+printed+offset, y, ' ', nil, style)
		}
		printed += width
	}
	return printed
}

// PrintSimple prints white text to the screen at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	width, _ := screen.Size()
	Print(screen, text, x, y, width-x, AlignmentLeft, Styles.PrimaryTextColor)
}
