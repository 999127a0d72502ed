package core

// Action represents a semantic input action, abstracted from physical keys.
// Front-ends translate keyboard input into these intents.
type Action int

const (
	ActionNone      Action = iota
	ActionPanUp            // W, Up arrow
	ActionPanDown          // S, Down arrow
	ActionPanLeft          // A, Left arrow
	ActionPanRight         // D, Right arrow
	ActionZoomIn           // Q
	ActionZoomOut          // E
	ActionBuild            // B - the build-action control
	ActionCancel           // Esc - leave build mode without placing
	ActionToggleHelp       // ?
	ActionQuit             // X, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionBuild:
		return "Build"
	case ActionCancel:
		return "Cancel"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a pointer interaction in screen units (terminal cells or
// window pixels). Conversion to world units is the session's job because
// only it knows the camera.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Held maps continuous actions (panning, zooming) that are held down.
	// Terminal front-ends cannot observe key release, so they report a
	// key press as held for the frame in which it arrived.
	Held map[Action]bool

	// Pointer holds pointer events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a continuous action as held during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the continuous action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(kind PointerKind, x, y float64) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, X: x, Y: y})
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Pointer = f.Pointer[:0]
}
