package draglist

import (
	"github.com/gdamore/tcell/v2"
)

// Key identifies a Column child independently of its positional index. Keys
// are supplied by the caller, must be comparable, and must be stable across
// reorders. Two children must never share a key at the same time; lookups
// among duplicate keys are undefined.
type Key any

// columnEntry is one keyed child of a Column.
type columnEntry struct {
	key  Key
	item Item
}

// Column is a container that distributes its keyed children vertically and
// lets the user grab, drag, and drop them to request a reorder.
//
// The column itself never mutates the child sequence. It reports the user's
// intent through four callbacks: grabbed (a child was pressed), dragged (the
// candidate drop location changed), dropped (the drag concluded at a drop
// location), and canceled (the interaction was abandoned). The caller applies
// the reorder to its backing data, typically with [Move], and rebuilds or
// reorders the children accordingly.
//
//	column := draglist.NewColumn().SetSpacing(1)
//	for _, row := range rows {
//	    column.AddItem(row.ID, draglist.NewText(row.Label))
//	}
//	column.SetDroppedFunc(func(key draglist.Key, location int) {
//	    rows = draglist.Move(rows, indexOf(rows, key), location)
//	})
type Column struct {
	*Box

	// Vertical spacing between children.
	spacing int
	// Horizontal alignment of children narrower than the inner rect.
	alignment Alignment
	// Maximum width of a child; 0 means no limit.
	maxWidth int
	// Whether children are clipped to the column's inner rect. A dragged
	// child is exempt and may be drawn outside the column.
	clip bool

	// Whether a marker line is shown at the candidate drop location.
	dropPositionMarker bool
	// Whether the dragged child visually follows the pointer.
	dragFollow bool
	// Whether the dragged child also follows the pointer on the cross axis.
	// Only effective with dragFollow.
	dragLateral bool
	// Whether a drag engages immediately on press, anchored to the child's
	// bounds center. Only effective with dragFollow.
	dragCenter bool

	// markerStyle resolves the marker style against the active theme at draw
	// time.
	markerStyle func(theme *Theme) tcell.Style

	entries []columnEntry
	slots   []columnSlot
	drag    dragState

	grabbed  func(key Key)
	dragged  func(key Key, location int)
	dropped  func(key Key, location int)
	canceled func(key Key)
}

// NewColumn returns a new, empty column. The drop-position marker is enabled;
// all drag-follow modes are off.
func NewColumn() *Column {
	return &Column{
		Box:                NewBox(),
		dropPositionMarker: true,
		markerStyle: func(theme *Theme) tcell.Style {
			return tcell.StyleDefault.Foreground(theme.MarkerColor)
		},
	}
}

// SetSpacing sets the vertical spacing between children.
func (c *Column) SetSpacing(spacing int) *Column {
	if spacing < 0 {
		spacing = 0
	}
	if c.spacing != spacing {
		c.spacing = spacing
		c.MarkDirty()
	}
	return c
}

// SetAlignment sets the horizontal alignment of children narrower than the
// column's inner rect.
func (c *Column) SetAlignment(alignment Alignment) *Column {
	if c.alignment != alignment {
		c.alignment = alignment
		c.MarkDirty()
	}
	return c
}

// SetMaxWidth sets the maximum width of a child. A value of 0 disables the
// limit.
func (c *Column) SetMaxWidth(maxWidth int) *Column {
	if maxWidth < 0 {
		maxWidth = 0
	}
	if c.maxWidth != maxWidth {
		c.maxWidth = maxWidth
		c.MarkDirty()
	}
	return c
}

// SetClip sets whether children are clipped to the column's inner rect. A
// dragged child is never clipped and can be drawn outside the column.
func (c *Column) SetClip(clip bool) *Column {
	if c.clip != clip {
		c.clip = clip
		c.MarkDirty()
	}
	return c
}

// SetDropPositionMarker sets whether a marker line is shown at the position
// where the dragged child would be dropped if the press or touch was released
// at the current position.
func (c *Column) SetDropPositionMarker(marker bool) *Column {
	if c.dropPositionMarker != marker {
		c.dropPositionMarker = marker
		c.MarkDirty()
	}
	return c
}

// SetDragFollow sets whether a child follows the pointer or touch while being
// dragged.
func (c *Column) SetDragFollow(follow bool) *Column {
	if c.dragFollow != follow {
		c.dragFollow = follow
		c.MarkDirty()
	}
	return c
}

// SetDragLateral sets whether a dragged child also follows the pointer on the
// cross axis of the column. If false, a dragged child only moves vertically.
// This has no effect unless drag-follow is enabled.
func (c *Column) SetDragLateral(lateral bool) *Column {
	if c.dragLateral != lateral {
		c.dragLateral = lateral
		c.MarkDirty()
	}
	return c
}

// SetDragCenter sets whether a child is centered on the pointer while being
// dragged, engaging the drag immediately on press. This has no effect unless
// drag-follow is enabled.
func (c *Column) SetDragCenter(center bool) *Column {
	if c.dragCenter != center {
		c.dragCenter = center
		c.MarkDirty()
	}
	return c
}

// SetMarkerStyleFunc sets the function which resolves the drop-position
// marker style against the active theme at draw time. Set to nil to restore
// the default (the theme's marker color).
func (c *Column) SetMarkerStyleFunc(style func(theme *Theme) tcell.Style) *Column {
	if style == nil {
		style = func(theme *Theme) tcell.Style {
			return tcell.StyleDefault.Foreground(theme.MarkerColor)
		}
	}
	c.markerStyle = style
	c.MarkDirty()
	return c
}

// SetGrabbedFunc sets a handler which is called when a child is grabbed for
// dragging. It receives the key of the grabbed child.
func (c *Column) SetGrabbedFunc(handler func(key Key)) *Column {
	c.grabbed = handler
	return c
}

// SetDraggedFunc sets a handler which is called when dragging starts and
// whenever the dragged child's candidate drop location changes. It receives
// the key of the dragged child and the drop location, an insertion index in
// [0, ItemCount()].
func (c *Column) SetDraggedFunc(handler func(key Key, location int)) *Column {
	c.dragged = handler
	return c
}

// SetDroppedFunc sets a handler which is called when a dragged child is
// dropped. It receives the key of the dropped child and the drop location, an
// insertion index in [0, ItemCount()]. Callers typically apply it to their
// backing data with [Move].
func (c *Column) SetDroppedFunc(handler func(key Key, location int)) *Column {
	c.dropped = handler
	return c
}

// SetCanceledFunc sets a handler which is called when the user abandons an
// active grab or drag, by releasing without moving, pressing the secondary
// button, or losing the touch. It receives the key of the child that was
// being dragged. No reorder takes place.
func (c *Column) SetCanceledFunc(handler func(key Key)) *Column {
	c.canceled = handler
	return c
}

// AddItem appends a keyed child to the column. The key must be comparable and
// unique among the column's children.
func (c *Column) AddItem(key Key, item Item) *Column {
	c.entries = append(c.entries, columnEntry{key: key, item: item})
	bindDirtyParent(item, c.Box)
	c.MarkDirty()
	return c
}

// AddItemMaybe appends a keyed child to the column if item is not nil.
func (c *Column) AddItemMaybe(key Key, item Item) *Column {
	if item == nil {
		return c
	}
	return c.AddItem(key, item)
}

// Clear removes all children and resets any interaction in progress.
func (c *Column) Clear() *Column {
	for _, entry := range c.entries {
		unbindDirtyParent(entry.item, c.Box)
	}
	c.entries = nil
	c.slots = nil
	c.drag = dragState{}
	c.MarkDirty()
	return c
}

// ItemCount returns the number of children.
func (c *Column) ItemCount() int {
	return len(c.entries)
}

// ItemAt returns the key and child at the given index, or (nil, nil) if the
// index is out of range.
func (c *Column) ItemAt(index int) (Key, Item) {
	if index < 0 || index >= len(c.entries) {
		return nil, nil
	}
	entry := c.entries[index]
	return entry.key, entry.item
}

// IsDragging returns whether a child is currently being dragged.
func (c *Column) IsDragging() bool {
	return c.drag.phase == dragActive
}

// layoutItems assigns a slot rectangle to every child: a single vertical flow
// inside the inner rect, with spacing between items, width clamped to the max
// width, and narrower content aligned horizontally.
func (c *Column) layoutItems() {
	x, y, width, _ := c.GetInnerRect()
	contentWidth := width
	if c.maxWidth > 0 && contentWidth > c.maxWidth {
		contentWidth = c.maxWidth
	}
	itemX := x
	switch c.alignment {
	case AlignmentCenter:
		itemX = x + (width-contentWidth)/2
	case AlignmentRight:
		itemX = x + width - contentWidth
	}

	slots := c.slots[:0]
	row := y
	for index, entry := range c.entries {
		height := max(entry.item.Height(contentWidth), 1)
		slots = append(slots, columnSlot{
			index:  index,
			x:      itemX,
			y:      row,
			width:  contentWidth,
			height: height,
		})
		// Position the child right away so it can hit-test forwarded events
		// against its current bounds.
		entry.item.SetRect(itemX, row, contentWidth, height)
		row += height + c.spacing
	}
	c.slots = slots
}

// forwardToItems reports whether the given action is forwarded to children.
// While a child is grabbed or dragged, move events are withheld so children do
// not react to a hover while something is dragged over them; every other event
// kind still reaches them first.
func (c *Column) forwardToItems(action MouseAction) bool {
	if c.drag.isIdle() {
		return true
	}
	return !action.isMove()
}

// MouseHandler routes pointer and touch events. Children are updated before
// the column's own state machine, so a child can claim a press (by returning a
// ConsumeEventCommand) before the column hit-tests it. The state machine then
// runs on the original event position regardless of what children did.
func (c *Column) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	c.layoutItems()
	x, y := event.Position()

	var cmd Command
	claimed := false
	if c.forwardToItems(action) {
		for _, entry := range c.entries {
			_, itemCmd := entry.item.MouseHandler(action, event)
			cmd = AppendCommand(cmd, itemCmd)
			if Consumes(itemCmd) {
				claimed = true
			}
		}
	}

	switch {
	case action.isPress():
		if c.drag.isIdle() && !claimed && c.InRect(x, y) {
			cmd = AppendCommand(cmd, c.grabAt(x, y))
		}
	case action.isCancel():
		if key, ok := c.drag.activeKey(); ok {
			c.drag = dragState{}
			if c.canceled != nil {
				c.canceled(key)
			}
			cmd = AppendCommand(cmd, RedrawCommand{})
			c.MarkDirty()
		}
	case action.isRelease():
		cmd = AppendCommand(cmd, c.release())
	case action.isMove():
		cmd = AppendCommand(cmd, c.moveTo(x, y))
	}

	// Keep receiving follow-up events while an interaction is in progress,
	// even when the pointer leaves the column.
	var capture Primitive
	if !c.drag.isIdle() {
		capture = c
	}
	return capture, cmd
}

// grabAt starts an interaction at the given press position: it identifies the
// topmost child under the pointer, notifies the grab, and either enters the
// grabbed phase or, in center-drag mode, drags immediately anchored to the
// child's bounds center.
func (c *Column) grabAt(x, y int) Command {
	slot, ok := hitSlot(c.slots, x, y)
	if !ok {
		return nil
	}
	key := c.entries[slot.index].key
	if c.grabbed != nil {
		c.grabbed(key)
	}

	if c.dragCenter {
		positionX := x
		if !c.dragLateral {
			positionX = slot.centerX()
		}
		location := dropLocation(c.slots, y)
		c.drag = dragState{
			phase:    dragActive,
			key:      key,
			originX:  slot.centerX(),
			originY:  slot.centerY(),
			x:        positionX,
			y:        y,
			location: location,
		}
		if c.dragged != nil {
			c.dragged(key, location)
		}
	} else {
		c.drag = dragState{
			phase:   dragGrabbed,
			key:     key,
			originX: x,
			originY: y,
		}
	}
	c.MarkDirty()
	return RedrawCommand{}
}

// moveTo advances the interaction to a new pointer position. Moves while idle
// only refresh hover affordances; moves while grabbed or dragged recompute the
// drop location and notify when it changed.
func (c *Column) moveTo(x, y int) Command {
	if c.drag.isIdle() {
		if c.InRect(x, y) {
			return RedrawCommand{}
		}
		return nil
	}

	if lastX, lastY, ok := c.drag.lastPosition(); ok && x == lastX && y == lastY {
		return nil
	}

	positionX := x
	if !c.dragLateral {
		positionX = c.drag.originX
	}
	location := dropLocation(c.slots, y)
	notify := true
	if previous, ok := c.drag.dropLocation(); ok && previous == location {
		notify = false
	}
	c.drag = dragState{
		phase:    dragActive,
		key:      c.drag.key,
		originX:  c.drag.originX,
		originY:  c.drag.originY,
		x:        positionX,
		y:        y,
		location: location,
	}
	if notify && c.dragged != nil {
		c.dragged(c.drag.key, location)
	}
	// The marker sits at the drop location, so it must repaint when the
	// location changes even if the child itself does not follow the pointer.
	if c.dragFollow || (notify && c.dropPositionMarker) {
		c.MarkDirty()
		return RedrawCommand{}
	}
	return nil
}

// release concludes the interaction: a release while merely grabbed is a
// cancel (no reorder), a release while dragging recomputes the final drop
// location from the last position and notifies the drop.
func (c *Column) release() Command {
	switch c.drag.phase {
	case dragGrabbed:
		key := c.drag.key
		c.drag = dragState{}
		if c.canceled != nil {
			c.canceled(key)
		}
	case dragActive:
		key := c.drag.key
		location := dropLocation(c.slots, c.drag.y)
		c.drag = dragState{}
		if c.dropped != nil {
			c.dropped(key, location)
		}
	default:
		return nil
	}
	c.MarkDirty()
	return RedrawCommand{}
}

// InputHandler forwards key events to the child that has focus.
func (c *Column) InputHandler(event *tcell.EventKey) Command {
	for _, entry := range c.entries {
		if entry.item.HasFocus() {
			return entry.item.InputHandler(event)
		}
	}
	return nil
}

// Focus is called when this primitive receives focus.
func (c *Column) Focus(delegate func(p Primitive)) {
	if delegate != nil && len(c.entries) > 0 {
		delegate(c.entries[0].item)
		return
	}
	c.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive has focus.
func (c *Column) HasFocus() bool {
	for _, entry := range c.entries {
		if entry.item.HasFocus() {
			return true
		}
	}
	return c.Box.HasFocus()
}

// IsDirty returns whether this primitive or one of its children needs redraw.
func (c *Column) IsDirty() bool {
	if c.Box.IsDirty() {
		return true
	}
	for _, entry := range c.entries {
		if entry.item.IsDirty() {
			return true
		}
	}
	return false
}

// MarkClean marks this primitive and all children as clean.
func (c *Column) MarkClean() {
	c.Box.MarkClean()
	for _, entry := range c.entries {
		entry.item.MarkClean()
	}
}

// Draw draws this primitive onto the screen. All children are drawn in their
// slots except the dragged one; the drop-position marker and the dragged
// child are deferred to a final pass so both appear on top of all siblings.
func (c *Column) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	c.layoutItems()

	var (
		markerRow    int
		drawMarker   bool
		draggedIndex = -1
		dx, dy       int
	)
	if c.drag.phase == dragActive {
		if c.dropPositionMarker {
			markerRow, drawMarker = dropMarkerRow(c.slots, c.spacing, c.drag.location)
		}
		if c.dragFollow {
			for index, entry := range c.entries {
				if entry.key == c.drag.key {
					draggedIndex = index
					break
				}
			}
			dx = c.drag.x - c.drag.originX
			dy = c.drag.y - c.drag.originY
		}
	}

	target := screen
	if c.clip {
		x, y, width, height := c.GetInnerRect()
		target = newClipScreen(screen, x, y, width, height)
	}

	for _, slot := range c.slots {
		if slot.index == draggedIndex {
			continue
		}
		c.entries[slot.index].item.Draw(target)
	}

	// Deferred pass: marker first, then the dragged child on top. The dragged
	// child bypasses clipping so it stays visible outside the column.
	if drawMarker {
		c.drawDropMarker(screen, markerRow)
	}
	if draggedIndex >= 0 {
		slot := c.slots[draggedIndex]
		item := c.entries[draggedIndex].item
		item.SetRect(slot.x+dx, slot.y+dy, slot.width, slot.height)
		item.Draw(screen)
		item.SetRect(slot.x, slot.y, slot.width, slot.height)
	}
}

// drawDropMarker draws a thin line across the content width with a leading
// circular cap, styled against the active theme.
func (c *Column) drawDropMarker(screen tcell.Screen, row int) {
	x, y, width, height := c.GetInnerRect()
	if width <= 0 || row < y-1 || row > y+height {
		return
	}
	style := c.markerStyle(&Styles)
	screen.SetContent(x, row, SemigraphicsBlackCircle, nil, style)
	for i := x + 1; i < x+width; i++ {
		screen.SetContent(i, row, BoxDrawingsLightHorizontal, nil, style)
	}
}

var _ Primitive = &Column{}

// clipScreen restricts drawing to a rectangle. Content outside the rectangle
// is dropped.
type clipScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClipScreen(screen tcell.Screen, x, y, width, height int) *clipScreen {
	return &clipScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clipScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clipScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clipScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
