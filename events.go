package draglist

// MouseAction indicates one of the actions the pointer is logically doing.
// Touch actions are part of the same taxonomy so backends with touch input
// can feed the same handlers; terminals without touch never produce them.
type MouseAction int16

// Available pointer and touch actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
	TouchDown
	TouchUp
	TouchMove
	TouchLost
)

// isPress reports whether the action begins a primary press.
func (a MouseAction) isPress() bool {
	return a == MouseLeftDown || a == TouchDown
}

// isRelease reports whether the action ends a primary press.
func (a MouseAction) isRelease() bool {
	return a == MouseLeftUp || a == TouchUp
}

// isMove reports whether the action is a pointer or touch movement.
func (a MouseAction) isMove() bool {
	return a == MouseMove || a == TouchMove
}

// isCancel reports whether the action aborts an interaction: a secondary
// button press or a lost touch.
func (a MouseAction) isCancel() bool {
	return a == MouseRightDown || a == TouchLost
}
