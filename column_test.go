package draglist

import (
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fixedItem is a column child with a fixed reported height that records the
// actions forwarded to it. It can optionally claim presses, like a button
// overlapping a row would.
type fixedItem struct {
	*Box
	itemHeight   int
	seen         []MouseAction
	claimPresses bool
}

func newFixedItem(height int) *fixedItem {
	return &fixedItem{Box: NewBox(), itemHeight: height}
}

func (f *fixedItem) Height(width int) int {
	return f.itemHeight
}

func (f *fixedItem) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	f.seen = append(f.seen, action)
	if f.claimPresses && action.isPress() && f.InRect(event.Position()) {
		return nil, ConsumeEventCommand{}
	}
	return nil, nil
}

type notification struct {
	kind     string
	key      Key
	location int
}

// recordNotes wires all four outward notifications into one ordered log.
func recordNotes(c *Column) *[]notification {
	notes := &[]notification{}
	c.SetGrabbedFunc(func(key Key) {
		*notes = append(*notes, notification{kind: "grab", key: key})
	})
	c.SetDraggedFunc(func(key Key, location int) {
		*notes = append(*notes, notification{kind: "drag", key: key, location: location})
	})
	c.SetDroppedFunc(func(key Key, location int) {
		*notes = append(*notes, notification{kind: "drop", key: key, location: location})
	})
	c.SetCanceledFunc(func(key Key) {
		*notes = append(*notes, notification{kind: "cancel", key: key})
	})
	return notes
}

// newTestColumn builds a column with one fixed-height item per key, spacing 1,
// positioned at the origin. With height 2 the slots sit at y = 0, 3, 6, ...
// and their vertical centers at 1, 4, 7, ...
func newTestColumn(keys ...string) (*Column, []*fixedItem) {
	column := NewColumn().SetSpacing(1)
	items := make([]*fixedItem, 0, len(keys))
	for _, key := range keys {
		item := newFixedItem(2)
		items = append(items, item)
		column.AddItem(key, item)
	}
	column.SetRect(0, 0, 10, 20)
	return column, items
}

func at(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func containsRedraw(cmd Command) bool {
	switch c := cmd.(type) {
	case RedrawCommand:
		return true
	case BatchCommand:
		for _, item := range c {
			if containsRedraw(item) {
				return true
			}
		}
	}
	return false
}

func assertNotes(t *testing.T, got []notification, want []notification) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

func TestColumnPressReleaseEmitsGrabThenCancel(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseLeftUp, at(2, 3))

	assertNotes(t, *notes, []notification{
		{kind: "grab", key: "B"},
		{kind: "cancel", key: "B"},
	})
}

func TestColumnDragDropSequence(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C", "D", "E")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3)) // grab B
	column.MouseHandler(MouseMove, at(2, 11))    // centers 1,4,7,10 passed
	column.MouseHandler(MouseMove, at(2, 14))    // below all centers
	column.MouseHandler(MouseLeftUp, at(2, 14))

	assertNotes(t, *notes, []notification{
		{kind: "grab", key: "B"},
		{kind: "drag", key: "B", location: 4},
		{kind: "drag", key: "B", location: 5},
		{kind: "drop", key: "B", location: 5},
	})

	items := []string{"A", "B", "C", "D", "E"}
	items = Move(items, 1, 5)
	if want := []string{"A", "C", "D", "E", "B"}; !slices.Equal(items, want) {
		t.Errorf("after drop: %v, want %v", items, want)
	}
}

func TestColumnDropAtOriginalSlot(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 0)) // grab A
	column.MouseHandler(MouseMove, at(3, 0))     // above A's center
	column.MouseHandler(MouseLeftUp, at(3, 0))

	assertNotes(t, *notes, []notification{
		{kind: "grab", key: "A"},
		{kind: "drag", key: "A", location: 0},
		{kind: "drop", key: "A", location: 0},
	})

	items := []string{"A", "B", "C"}
	if got := Move(items, 0, 0); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("drop at original slot changed order: %v", got)
	}
}

func TestColumnSecondaryPressCancelsOnce(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(2, 8))
	column.MouseHandler(MouseRightDown, at(2, 8))
	// A second cancel action while idle must do nothing.
	column.MouseHandler(MouseRightDown, at(2, 8))
	column.MouseHandler(MouseLeftUp, at(2, 8))

	cancels := 0
	for _, note := range *notes {
		if note.kind == "cancel" {
			cancels++
		}
		if note.kind == "drop" {
			t.Error("unexpected drop after cancel")
		}
	}
	if cancels != 1 {
		t.Errorf("got %d cancels, want 1", cancels)
	}
}

func TestColumnTouchLostCancels(t *testing.T) {
	column, _ := newTestColumn("A", "B")
	notes := recordNotes(column)

	column.MouseHandler(TouchDown, at(2, 0))
	column.MouseHandler(TouchMove, at(2, 4))
	column.MouseHandler(TouchLost, at(2, 4))

	want := []notification{
		{kind: "grab", key: "A"},
		{kind: "drag", key: "A", location: 2},
		{kind: "cancel", key: "A"},
	}
	assertNotes(t, *notes, want)
}

func TestColumnMoveAtSamePositionIsNoOp(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(2, 8))
	before := len(*notes)
	_, cmd := column.MouseHandler(MouseMove, at(2, 8))
	if len(*notes) != before {
		t.Errorf("repeated move produced notifications: %v", (*notes)[before:])
	}
	if cmd != nil {
		t.Errorf("repeated move produced command %v", cmd)
	}
}

func TestColumnUnchangedDropLocationNotRenotified(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(2, 8)) // location 2
	column.MouseHandler(MouseMove, at(2, 9)) // still location 2

	drags := 0
	for _, note := range *notes {
		if note.kind == "drag" {
			drags++
		}
	}
	if drags != 1 {
		t.Errorf("got %d drag notifications, want 1", drags)
	}
}

func TestColumnReleaseOrMoveWithoutGrabIgnored(t *testing.T) {
	column, _ := newTestColumn("A", "B")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftUp, at(2, 0))
	column.MouseHandler(MouseRightDown, at(2, 0))
	if len(*notes) != 0 {
		t.Errorf("unexpected notifications: %v", *notes)
	}
}

func TestColumnCenterDragEngagesOnPress(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	column.SetDragFollow(true).SetDragCenter(true)
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3)) // B's center is (5, 4)
	if !column.IsDragging() {
		t.Fatal("center-drag press did not enter the dragging phase")
	}
	assertNotes(t, *notes, []notification{
		{kind: "grab", key: "B"},
		{kind: "drag", key: "B", location: 1},
	})

	// An immediate release is a drop, not a cancel.
	column.MouseHandler(MouseLeftUp, at(2, 3))
	last := (*notes)[len(*notes)-1]
	if last.kind != "drop" || last.location != 1 {
		t.Errorf("release after center-drag press = %v, want drop at 1", last)
	}
}

func TestColumnChildClaimsPress(t *testing.T) {
	column, items := newTestColumn("A", "B", "C")
	items[1].claimPresses = true
	notes := recordNotes(column)

	_, cmd := column.MouseHandler(MouseLeftDown, at(2, 3))
	if len(*notes) != 0 {
		t.Errorf("claimed press still produced notifications: %v", *notes)
	}
	if !Consumes(cmd) {
		t.Error("child's consume command was dropped")
	}
	if !column.drag.isIdle() {
		t.Error("column grabbed a child despite the claimed press")
	}
}

func TestColumnSuppressesMovesWhileDragging(t *testing.T) {
	column, items := newTestColumn("A", "B", "C")

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(2, 8))
	for _, item := range items {
		if slices.Contains(item.seen, MouseMove) {
			t.Fatal("a move was forwarded to a child while non-idle")
		}
	}

	// Non-move events still reach children first.
	column.MouseHandler(MouseLeftUp, at(2, 8))
	for _, item := range items {
		if !slices.Contains(item.seen, MouseLeftUp) {
			t.Fatal("a release was not forwarded to a child")
		}
	}

	// Moves flow again once idle.
	column.MouseHandler(MouseMove, at(2, 9))
	if !slices.Contains(items[0].seen, MouseMove) {
		t.Error("a move was not forwarded to a child while idle")
	}
}

func TestColumnCapturesWhileInteracting(t *testing.T) {
	column, _ := newTestColumn("A", "B")

	capture, _ := column.MouseHandler(MouseLeftDown, at(2, 0))
	if capture != Primitive(column) {
		t.Error("grabbed column did not capture follow-up events")
	}
	capture, _ = column.MouseHandler(MouseMove, at(2, 4))
	if capture != Primitive(column) {
		t.Error("dragging column did not capture follow-up events")
	}
	capture, _ = column.MouseHandler(MouseLeftUp, at(2, 4))
	if capture != nil {
		t.Error("idle column still captures events")
	}
}

func TestColumnIdleHoverRequestsRedraw(t *testing.T) {
	column, _ := newTestColumn("A", "B")

	if _, cmd := column.MouseHandler(MouseMove, at(2, 1)); !containsRedraw(cmd) {
		t.Error("hover inside the column did not request a redraw")
	}
	if _, cmd := column.MouseHandler(MouseMove, at(50, 50)); cmd != nil {
		t.Errorf("hover outside the column produced command %v", cmd)
	}
}

func TestColumnLocationChangeRedrawsMarker(t *testing.T) {
	// With the default configuration (marker on, drag-follow off), a move
	// that changes the drop location must still request a redraw, or the
	// marker would never appear on a command-driven host.
	column, _ := newTestColumn("A", "B", "C")

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MarkClean()
	if _, cmd := column.MouseHandler(MouseMove, at(2, 8)); !containsRedraw(cmd) {
		t.Error("location-changing move did not request a redraw")
	}
	if !column.IsDirty() {
		t.Error("location-changing move did not mark the column dirty")
	}

	// A move at a new position but the same drop location has nothing to
	// repaint without drag-follow.
	column.MarkClean()
	if _, cmd := column.MouseHandler(MouseMove, at(2, 9)); containsRedraw(cmd) {
		t.Error("move with an unchanged drop location requested a redraw")
	}
}

func TestColumnMoveRedrawGates(t *testing.T) {
	// With both the marker and drag-follow off there is nothing to repaint
	// on a move, whatever the drop location does.
	bare, _ := newTestColumn("A", "B", "C")
	bare.SetDropPositionMarker(false)
	bare.MouseHandler(MouseLeftDown, at(2, 3))
	if _, cmd := bare.MouseHandler(MouseMove, at(2, 8)); containsRedraw(cmd) {
		t.Error("move without marker or drag-follow requested a redraw")
	}

	// With drag-follow on, every position change repaints, even when the
	// drop location is unchanged.
	follow, _ := newTestColumn("A", "B", "C")
	follow.SetDropPositionMarker(false).SetDragFollow(true)
	follow.MouseHandler(MouseLeftDown, at(2, 3))
	follow.MouseHandler(MouseMove, at(2, 8))
	if _, cmd := follow.MouseHandler(MouseMove, at(2, 9)); !containsRedraw(cmd) {
		t.Error("move with drag-follow did not request a redraw")
	}
}

func TestColumnPressBetweenItemsIsIgnored(t *testing.T) {
	column, _ := newTestColumn("A", "B")
	notes := recordNotes(column)

	// Row 2 is the spacing gap between A (rows 0-1) and B (rows 3-4).
	column.MouseHandler(MouseLeftDown, at(2, 2))
	if len(*notes) != 0 {
		t.Errorf("press in the spacing gap produced notifications: %v", *notes)
	}
	if !column.drag.isIdle() {
		t.Error("press in the spacing gap grabbed a child")
	}
}

func TestColumnPressWhileDraggingIsIgnored(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(2, 8))
	before := len(*notes)
	column.MouseHandler(MouseLeftDown, at(2, 0))
	for _, note := range (*notes)[before:] {
		if note.kind == "grab" {
			t.Error("a second press while dragging grabbed another child")
		}
	}
}

func TestColumnLateralPinning(t *testing.T) {
	column, _ := newTestColumn("A", "B", "C")
	column.SetDragFollow(true)

	column.MouseHandler(MouseLeftDown, at(2, 3))
	column.MouseHandler(MouseMove, at(7, 8))
	if column.drag.x != 2 {
		t.Errorf("pinned drag x = %d, want origin x 2", column.drag.x)
	}

	lateral, _ := newTestColumn("A", "B", "C")
	lateral.SetDragFollow(true).SetDragLateral(true)
	lateral.MouseHandler(MouseLeftDown, at(2, 3))
	lateral.MouseHandler(MouseMove, at(7, 8))
	if lateral.drag.x != 7 {
		t.Errorf("lateral drag x = %d, want pointer x 7", lateral.drag.x)
	}
}

func TestColumnEmptyIgnoresAllEvents(t *testing.T) {
	column := NewColumn()
	column.SetRect(0, 0, 10, 10)
	notes := recordNotes(column)

	column.MouseHandler(MouseLeftDown, at(2, 2))
	column.MouseHandler(MouseMove, at(2, 3))
	column.MouseHandler(MouseLeftUp, at(2, 3))
	for _, note := range *notes {
		if note.kind != "" {
			t.Fatalf("empty column produced notification %v", note)
		}
	}
}

func TestColumnClearResetsDrag(t *testing.T) {
	column, _ := newTestColumn("A", "B")
	column.MouseHandler(MouseLeftDown, at(2, 0))
	column.Clear()
	if !column.drag.isIdle() {
		t.Error("Clear left an interaction in progress")
	}
	if column.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d after Clear", column.ItemCount())
	}
}
