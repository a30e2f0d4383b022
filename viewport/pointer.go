package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// WheelNotch converts one wheel step to the pixel delta browsers report.
const WheelNotch = 100

// NoTouch is the TouchID of a pointer driven by the mouse.
const NoTouch = -1

// Pointer turns raw mouse and touch samples into camera events. It keeps
// the press bookkeeping that tells a click from a drag.
type Pointer struct {
	Pos    math.Vec2
	Inside bool // over the window

	// OverUI is set while the pointer rests on a header widget. Moves,
	// presses and the wheel are swallowed then, and a drag in progress ends.
	OverUI bool

	// TouchID is the touch driving the pointer, or NoTouch.
	TouchID int

	PressPos  math.Vec2
	Pressed   bool
	Released  bool // the press ended this frame
	OnMinimap bool // the last press started on the minimap
}

func NewPointer() Pointer {
	return Pointer{TouchID: NoTouch}
}

// Touching reports whether a touch owns the pointer.
func (p *Pointer) Touching() bool { return p.TouchID != NoTouch }

// BeginFrame clears the per-frame release flag.
func (p *Pointer) BeginFrame() {
	p.Released = false
}

// Move records pos and queues a PointerMove when it changed.
func (p *Pointer) Move(q *Queue, pos math.Vec2, src Source, nowMs float64) {
	moved := pos != p.Pos
	p.Pos = pos
	if p.OverUI {
		if p.Pressed {
			p.cancel(q, src, nowMs)
		}
		return
	}
	if moved {
		q.Push(Event{Kind: PointerMove, Source: src, Pos: pos, TimeMs: nowMs})
	}
}

// Press starts a drag, or a minimap pan when the pointer is over minimap.
func (p *Pointer) Press(q *Queue, src Source, minimap Rect, nowMs float64) {
	if p.OverUI || p.Pressed {
		return
	}
	p.Pressed = true
	p.PressPos = p.Pos
	p.OnMinimap = minimap.Contains(p.Pos)

	kind := PointerDown
	if p.OnMinimap {
		kind = MinimapDown
	}
	q.Push(Event{Kind: kind, Source: src, Pos: p.Pos, TimeMs: nowMs})
}

// Release ends the current press.
func (p *Pointer) Release(q *Queue, src Source, nowMs float64) {
	if !p.Pressed {
		return
	}
	p.Pressed = false
	p.Released = true
	q.Push(Event{Kind: PointerUp, Source: src, Pos: p.Pos, TimeMs: nowMs})
}

// cancel ends a press without it counting as a click.
func (p *Pointer) cancel(q *Queue, src Source, nowMs float64) {
	p.Pressed = false
	q.Push(Event{Kind: PointerUp, Source: src, Pos: p.Pos, TimeMs: nowMs})
}

// BeginTouch hands the pointer to touch id and presses at pos.
func (p *Pointer) BeginTouch(q *Queue, id int, pos math.Vec2, minimap Rect, nowMs float64) {
	p.TouchID = id
	p.Pos = pos
	p.Inside = true
	p.Press(q, Touch, minimap, nowMs)
}

// EndTouch releases the touch and gives the pointer back to the mouse.
func (p *Pointer) EndTouch(q *Queue, nowMs float64) {
	p.TouchID = NoTouch
	p.Release(q, Touch, nowMs)
}

// Wheel queues a zoom step. Ebiten reports notches with up positive;
// the camera takes browser-style pixels with down positive.
func (p *Pointer) Wheel(q *Queue, dy, nowMs float64) {
	if dy == 0 || p.OverUI {
		return
	}
	q.Push(Event{Kind: Wheel, Pos: p.Pos, DeltaY: -dy * WheelNotch, TimeMs: nowMs})
}

// Clicked reports whether the press that ended this frame stayed within
// slop pixels of where it began. Minimap presses never click.
func (p *Pointer) Clicked(slop float64) bool {
	if !p.Released || p.OnMinimap {
		return false
	}
	return stdmath.Hypot(p.Pos.X-p.PressPos.X, p.Pos.Y-p.PressPos.Y) <= slop
}

// CanHover reports whether the pointer may pick a card. Cards under the
// header widgets or the minimap panel cannot be hovered.
func (p *Pointer) CanHover(minimap Rect) bool {
	return p.Inside && !p.OverUI && !minimap.Contains(p.Pos)
}
