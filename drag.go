package draglist

// dragPhase enumerates the interaction phases of a Column drag.
type dragPhase int

const (
	// dragIdle means no child is being interacted with.
	dragIdle dragPhase = iota
	// dragGrabbed means a child is pressed for dragging but has not moved yet.
	dragGrabbed
	// dragActive means a child is being dragged.
	dragActive
)

// dragState is the exclusive per-column interaction state. Exactly one phase
// is active at a time; the zero value is idle. It is mutated only during the
// event pass and read-only during drawing.
type dragState struct {
	phase dragPhase

	// key identifies the grabbed or dragged child.
	key Key
	// originX, originY is the press position, or the child's bounds center in
	// center-drag mode.
	originX, originY int
	// x, y is the latest pointer position, possibly pinned to originX when
	// lateral following is off. Only meaningful while dragging.
	x, y int
	// location is the current drop location. Only meaningful while dragging.
	location int
}

func (d dragState) isIdle() bool {
	return d.phase == dragIdle
}

// activeKey returns the key of the grabbed or dragged child, if any.
func (d dragState) activeKey() (Key, bool) {
	if d.phase == dragIdle {
		return nil, false
	}
	return d.key, true
}

// lastPosition returns the most recent recorded pointer position: the origin
// while grabbed, the latest position while dragged.
func (d dragState) lastPosition() (int, int, bool) {
	switch d.phase {
	case dragGrabbed:
		return d.originX, d.originY, true
	case dragActive:
		return d.x, d.y, true
	}
	return 0, 0, false
}

// dropLocation returns the current drop location while dragging.
func (d dragState) dropLocation() (int, bool) {
	if d.phase != dragActive {
		return 0, false
	}
	return d.location, true
}
