package viewport

import "github.com/yohamta/donburi/features/math"

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	Wheel
	MinimapDown
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Wheel:
		return "wheel"
	case MinimapDown:
		return "minimap-down"
	}
	return "unknown"
}

// Source tells mouse input from touch input. Only the mouse edge-pans.
type Source int

const (
	Mouse Source = iota
	Touch
)

// Event is one input sample. Pos is in screen pixels; DeltaY is only set on
// Wheel events. TimeMs stamps the sample for drag velocity.
type Event struct {
	Kind   EventKind
	Source Source
	Pos    math.Vec2
	DeltaY float64
	TimeMs float64
}

// Layout is what the queue needs to know about the screen when draining.
type Layout struct {
	View      Size
	Minimap   Rect // screen rectangle of the minimap panel
	WorldSize float64
}

// Queue buffers input between frames. Events are applied in arrival order
// by Drain, which the frame loop calls right before Tick.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Len() int { return len(q.events) }

// Drain applies every pending event to c and empties the queue. It returns
// the number of events applied.
func (q *Queue) Drain(c *Camera, l Layout) int {
	n := len(q.events)
	for _, ev := range q.events {
		c.apply(ev, l)
	}
	q.events = q.events[:0]
	return n
}

func (c *Camera) apply(ev Event, l Layout) {
	mapSize := Size{W: l.Minimap.W, H: l.Minimap.H}
	local := math.Vec2{X: ev.Pos.X - l.Minimap.X, Y: ev.Pos.Y - l.Minimap.Y}

	switch ev.Kind {
	case PointerDown:
		c.BeginDrag(ev.Pos, ev.TimeMs)
	case MinimapDown:
		c.BeginMinimapDrag(local, l.WorldSize, mapSize, l.View)
	case PointerMove:
		if ev.Source == Mouse {
			c.ApplyEdgePan(ev.Pos, l.View)
		}
		switch c.state {
		case Dragging:
			c.UpdateDrag(ev.Pos, ev.TimeMs)
		case MinimapDragging:
			c.PanToMinimapPoint(local, l.WorldSize, mapSize, l.View)
		}
	case PointerUp:
		c.EndDrag()
	case Wheel:
		c.ApplyWheel(ev.DeltaY)
	}
}
