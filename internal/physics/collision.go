// Package physics implements the platformer movement model: per-tick
// acceleration and damping, gravity, and axis-separated swept collision
// resolution against static terrain.
package physics

import "github.com/vovakirdan/tui-platformer/internal/terrain"

// Box is an axis-aligned rectangle given by its edges in y-up space.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxFromRect converts a terrain rectangle to edge form.
func BoxFromRect(r terrain.Rect) Box {
	return Box{
		Left:   r.Left,
		Top:    r.Top(),
		Right:  r.Right(),
		Bottom: r.Bottom,
	}
}

// IntersectRect reports whether a and b overlap.
// Intervals are closed: boxes that only share an edge or a corner overlap.
// The resolver relies on this to detect contact with 1-unit probes.
func IntersectRect(a, b Box) bool {
	return !(a.Right < b.Left || b.Right < a.Left || a.Top < b.Bottom || b.Top < a.Bottom)
}

// IsColliding reports whether p's box, anchored at (x, y), overlaps any block.
// Only static block rectangles are tested; animation offsets are cosmetic.
// A player without area never collides.
func (w *World) IsColliding(p *Player, x, y float64) bool {
	if p.Attribute.Size.X <= 0 || p.Attribute.Size.Y <= 0 {
		return false
	}
	box := p.BoxAt(x, y)
	for i := range w.Terrain.Len() {
		if IntersectRect(box, BoxFromRect(w.Terrain.Block(i).Rect)) {
			return true
		}
	}
	return false
}
