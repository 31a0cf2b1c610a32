package draglist

import (
	"github.com/gdamore/tcell/v2"
)

// Button is a labeled box that triggers an action when selected. As a column
// child it claims presses before the column hit-tests them, so e.g. a remove
// button on a row can be clicked without starting a drag.
type Button struct {
	*Box

	// If set to true, the button cannot be activated.
	disabled bool

	// The text to be displayed inside the button.
	text string

	// The button's style (when deactivated).
	style tcell.Style

	// The button's style (when activated).
	activatedStyle tcell.Style

	// The button's style (when disabled).
	disabledStyle tcell.Style

	// An optional function which is called when the button was selected.
	selected func()
}

// NewButton returns a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		Box:            NewBox(),
		text:           label,
		style:          tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		activatedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
		disabledStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.ContrastSecondaryTextColor),
	}
}

// SetLabel sets the button text.
func (b *Button) SetLabel(label string) *Button {
	if b.text != label {
		b.text = label
		b.MarkDirty()
	}
	return b
}

// GetLabel returns the button text.
func (b *Button) GetLabel() string {
	return b.text
}

// SetStyle sets the style of the button used when it is not focused.
func (b *Button) SetStyle(style tcell.Style) *Button {
	if b.style != style {
		b.style = style
		b.MarkDirty()
	}
	return b
}

// SetActivatedStyle sets the style of the button used when it is focused.
func (b *Button) SetActivatedStyle(style tcell.Style) *Button {
	if b.activatedStyle != style {
		b.activatedStyle = style
		b.MarkDirty()
	}
	return b
}

// SetDisabledStyle sets the style of the button used when it is disabled.
func (b *Button) SetDisabledStyle(style tcell.Style) *Button {
	if b.disabledStyle != style {
		b.disabledStyle = style
		b.MarkDirty()
	}
	return b
}

// SetDisabled sets whether or not the button is disabled. Disabled buttons
// cannot be activated.
func (b *Button) SetDisabled(disabled bool) *Button {
	if b.disabled != disabled {
		b.disabled = disabled
		b.MarkDirty()
	}
	return b
}

// GetDisabled returns whether or not the button is disabled.
func (b *Button) GetDisabled() bool {
	return b.disabled
}

// SetSelectedFunc sets a handler which is called when the button was selected.
func (b *Button) SetSelectedFunc(handler func()) *Button {
	b.selected = handler
	return b
}

// Height returns the height needed to display the button.
func (b *Button) Height(width int) int {
	return 1
}

// Draw draws this primitive onto the screen.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.style
	if b.disabled {
		style = b.disabledStyle
	} else if b.HasFocus() {
		style = b.activatedStyle
	}
	_, background, _ := style.Decompose()
	b.SetBackgroundColor(background)
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		printWithStyle(screen, b.text, x, y+height/2, width, AlignmentCenter, style)
	}
}

// InputHandler returns the handler for this primitive.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if b.disabled {
		return nil
	}

	switch event.Key() {
	case tcell.KeyEnter:
		if b.selected != nil {
			b.selected()
		}
		return RedrawCommand{}
	}
	return nil
}

// MouseHandler returns the handler for this primitive. Presses and clicks
// within the button are consumed so containers do not react to them.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if b.disabled || !b.InRect(event.Position()) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown, TouchDown:
		return nil, BatchCommand{SetFocusCommand{Target: b}, ConsumeEventCommand{}}
	case MouseLeftClick, TouchUp:
		if b.selected != nil {
			b.selected()
		}
		return nil, BatchCommand{RedrawCommand{}, ConsumeEventCommand{}}
	}
	return nil, nil
}

var _ Item = &Button{}
