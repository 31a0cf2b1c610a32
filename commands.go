package draglist

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the Application event loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// It flattens nested BatchCommand values.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	switch c := current.(type) {
	case BatchCommand:
		batch = append(batch, c...)
	default:
		batch = append(batch, c)
	}

	switch n := next.(type) {
	case BatchCommand:
		batch = append(batch, n...)
	default:
		batch = append(batch, n)
	}
	return batch
}

// SetFocusCommand requests moving the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// ConsumeEventCommand stops further propagation of the current input event.
// A child primitive returns it to claim an event before its container reacts
// to the same event.
type ConsumeEventCommand struct{}

// Consumes reports whether cmd contains a ConsumeEventCommand, looking through
// nested batches.
func Consumes(cmd Command) bool {
	switch c := cmd.(type) {
	case ConsumeEventCommand:
		return true
	case BatchCommand:
		for _, item := range c {
			if Consumes(item) {
				return true
			}
		}
	}
	return false
}
