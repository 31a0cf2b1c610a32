package draglist

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The size of the screen event channel.
	eventsQueueSize = 100
	// The minimum time between two consecutive redraws.
	redrawPause = 50 * time.Millisecond
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application represents the top node of an application.
//
// It is not strictly required to use this class as none of the other classes
// depend on it. However, it provides useful tools to set up an application and
// plays nicely with all primitives. It owns the terminal screen, translates
// raw tcell events into [MouseAction] values, and executes the commands
// returned by primitive handlers.
//
// The following command displays a primitive p on the screen until the
// application is stopped (for example via QuitCommand):
//
//	if err := draglist.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never
	// be set directly.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	// Functions queued from goroutines, used to serialize updates to
	// primitives.
	updates chan queuedUpdate

	mouseCapturingPrimitive Primitive        // A Primitive returned by a MouseHandler which will capture future mouse events.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the application's screen.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called.
func (a *Application) Run() error {
	var (
		appErr      error
		lastRedraw  time.Time   // The time the screen was last redrawn.
		redrawTimer *time.Timer // A timer to schedule the next redraw.
	)
	a.Lock()

	// Make a screen if there is none yet.
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	a.screen.EnableMouse()
	screen := a.screen
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	// Draw the screen for the first time.
	a.draw()

	events := make(chan tcell.Event, eventsQueueSize)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	// Start event loop.
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return appErr
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				a.RLock()
				root := a.root
				a.RUnlock()
				if root != nil && root.HasFocus() {
					cmd := root.InputHandler(event)
					if a.executeCommand(cmd) {
						a.draw()
					}
				}
			case *tcell.EventResize:
				a.Lock()
				// Resize events can imply terminal state changes even when
				// the size reports unchanged, so force one redraw pass.
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastRedraw) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, func() {
						_ = screen.PostEvent(event)
					})
					break
				}
				lastRedraw = time.Now()
				a.draw()
			case *tcell.EventMouse:
				if a.fireMouseActions(event) {
					a.draw()
				}
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		// If we have updates, now is the time to execute them.
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

// fireMouseActions analyzes the provided mouse event, derives mouse actions
// from it and then forwards them to the corresponding primitives.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled bool) {
	// We want to relay follow-up events to the same target primitive.
	var targetPrimitive Primitive

	// Helper function to fire a mouse action.
	fire := func(action MouseAction) {
		// Determine the target primitive.
		var primitive Primitive
		if a.mouseCapturingPrimitive != nil {
			primitive = a.mouseCapturingPrimitive
			targetPrimitive = a.mouseCapturingPrimitive
		} else if targetPrimitive != nil {
			primitive = targetPrimitive
		} else {
			primitive = a.root
		}
		if primitive == nil {
			return
		}
		capture, cmd := primitive.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			handled = true
		}
		a.mouseCapturingPrimitive = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	for _, buttonEvent := range []struct {
		button          tcell.ButtonMask
		down, up, click MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick},
	} {
		if buttonChanges&buttonEvent.button != 0 {
			if buttons&buttonEvent.button != 0 {
				fire(buttonEvent.down)
				a.mouseDownX, a.mouseDownY = x, y
			} else {
				fire(buttonEvent.up)
				if x == a.mouseDownX && y == a.mouseDownY {
					fire(buttonEvent.click)
				}
			}
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	a.lastMouseButtons = buttons
	return handled
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw refreshes the screen (during the next update cycle).
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	// Maybe we're not ready yet or not anymore.
	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)

	// tcell keeps a logical back buffer and emits only visual deltas in
	// Show(). Keep full clears for forced redraws.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	root.MarkClean()
	screen.Show()

	return a
}

// Sync forces a full re-sync of the screen buffer with the actual screen
// during the next event cycle.
func (a *Application) Sync() *Application {
	a.updates <- queuedUpdate{f: func() {
		a.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.Unlock()
		if screen == nil {
			return
		}
		screen.Sync()
	}}
	return a
}

// SetRoot sets the root primitive for this application. This function must be
// called at least once or nothing will be displayed when the application
// starts. It also calls SetFocus() on the primitive.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. All key events will be directed
// down the hierarchy (starting at the root) until a primitive handles them,
// which per default goes towards the focused primitive.
//
// Blur() will be called on the previously focused primitive. Focus() will be
// called on the new primitive.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate is used to synchronize access to primitives from non-main
// goroutines. The provided function will be executed as part of the event
// loop and thus will not cause race conditions with other such update
// functions or the Draw() function.
//
// This function returns after f has executed. It must not be called from the
// main goroutine (e.g. from a widget handler or callback): the queue is
// serviced by the event loop itself, so waiting for f from that same
// goroutine deadlocks. Handlers request side effects by returning commands
// instead.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// executeCommand carries out the side effects requested by a command and
// reports whether the screen should be redrawn.
func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
		return false
	}

	return false
}
