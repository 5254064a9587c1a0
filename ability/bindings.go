package ability

// Input names understood by Character.SetupInput.
const (
	ActionJump    = "Jump"
	ActionDash    = "Dash"
	AxisMoveRight = "MoveRight"
)

// InputEvent is the edge of a discrete action.
type InputEvent int

const (
	Pressed InputEvent = iota
	Released
)

func (e InputEvent) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// TouchPoint is a touch edge delivered to touch handlers.
type TouchPoint struct {
	ID int
	X  float64
	Y  float64
}

type actionKey struct {
	name  string
	event InputEvent
}

// Bindings is a dispatch table from named inputs to handlers. Handlers run
// in registration order.
type Bindings struct {
	axes    map[string][]func(float64)
	actions map[actionKey][]func()
	touches map[InputEvent][]func(TouchPoint)
}

func NewBindings() *Bindings {
	return &Bindings{
		axes:    make(map[string][]func(float64)),
		actions: make(map[actionKey][]func()),
		touches: make(map[InputEvent][]func(TouchPoint)),
	}
}

func (b *Bindings) BindAxis(name string, fn func(value float64)) {
	if b == nil || fn == nil {
		return
	}
	b.axes[name] = append(b.axes[name], fn)
}

func (b *Bindings) BindAction(name string, event InputEvent, fn func()) {
	if b == nil || fn == nil {
		return
	}
	key := actionKey{name: name, event: event}
	b.actions[key] = append(b.actions[key], fn)
}

func (b *Bindings) BindTouch(event InputEvent, fn func(TouchPoint)) {
	if b == nil || fn == nil {
		return
	}
	b.touches[event] = append(b.touches[event], fn)
}

// Axis delivers value to every handler bound to the named axis. Axes are fed
// every frame, including zero values.
func (b *Bindings) Axis(name string, value float64) {
	if b == nil {
		return
	}
	for _, fn := range b.axes[name] {
		fn(value)
	}
}

func (b *Bindings) Action(name string, event InputEvent) {
	if b == nil {
		return
	}
	for _, fn := range b.actions[actionKey{name: name, event: event}] {
		fn()
	}
}

func (b *Bindings) Touch(event InputEvent, p TouchPoint) {
	if b == nil {
		return
	}
	for _, fn := range b.touches[event] {
		fn(p)
	}
}
