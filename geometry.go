package draglist

// columnSlot is the layout rectangle assigned to one column child.
type columnSlot struct {
	index               int
	x, y, width, height int
}

func (s columnSlot) contains(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s columnSlot) centerX() int {
	return s.x + s.width/2
}

func (s columnSlot) centerY() int {
	return s.y + s.height/2
}

// dropLocation returns the insertion index implied by the vertical pointer
// coordinate y: the number of slots whose vertical center lies at or above y.
// The result is in [0, len(slots)]; len(slots) means "insert at the end".
func dropLocation(slots []columnSlot, y int) int {
	index := 0
	for _, slot := range slots {
		if y < slot.centerY() {
			break
		}
		index++
	}
	return index
}

// dropMarkerRow returns the row on which to draw the drop-position marker for
// the given location: the seam between the two neighboring slots, or before
// the first / after the last. The second return value is false when there are
// no slots.
func dropMarkerRow(slots []columnSlot, spacing, location int) (int, bool) {
	if len(slots) == 0 {
		return 0, false
	}
	if location < len(slots) {
		return slots[location].y - (spacing+1)/2, true
	}
	last := slots[len(slots)-1]
	return last.y + last.height + spacing/2, true
}

// hitSlot returns the topmost slot containing the given position. Slots are
// tested in list order; the first match wins, which also resolves ties should
// slot rectangles ever overlap.
func hitSlot(slots []columnSlot, x, y int) (columnSlot, bool) {
	for _, slot := range slots {
		if slot.contains(x, y) {
			return slot, true
		}
	}
	return columnSlot{}, false
}
