// Package terrain holds the static level geometry: axis-aligned rectangles
// tagged with a material and an optional cosmetic animation.
package terrain

import (
	"errors"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	ErrUnknownMaterial  = errors.New("unknown material")
	ErrUnknownAnimation = errors.New("unknown animation")
)

// Rect is an axis-aligned rectangle in y-up world space,
// stored as [left, bottom, width, height].
type Rect struct {
	Left, Bottom  float64
	Width, Height float64
}

// R creates a rectangle from its bottom-left corner and size.
func R(left, bottom, width, height float64) Rect {
	return Rect{Left: left, Bottom: bottom, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Bottom + r.Height
}

// Translate returns r moved by v.
func (r Rect) Translate(v core.Vector2) Rect {
	r.Left += v.X
	r.Bottom += v.Y
	return r
}

// Block is one piece of level geometry.
type Block struct {
	Rect      Rect
	Material  Material
	Animation Animation // nil for static blocks
}

// Offset evaluates the block's animation at tick.
// The offset only affects drawing; collision always uses Rect.
func (b Block) Offset(tick int) core.Vector2 {
	if b.Animation == nil {
		return core.Zero()
	}
	return b.Animation(tick)
}

// Terrain is an ordered, immutable collection of blocks.
type Terrain struct {
	blocks []Block
}

// New creates a terrain from blocks. The slice is copied.
func New(blocks ...Block) *Terrain {
	t := &Terrain{blocks: make([]Block, len(blocks))}
	copy(t.blocks, blocks)
	return t
}

// Len returns the number of blocks. A nil terrain is empty.
func (t *Terrain) Len() int {
	if t == nil {
		return 0
	}
	return len(t.blocks)
}

// Block returns the i-th block.
func (t *Terrain) Block(i int) Block {
	return t.blocks[i]
}

// Bounds returns the union of all static block rectangles.
// ok is false for an empty terrain.
func (t *Terrain) Bounds() (r Rect, ok bool) {
	if t.Len() == 0 {
		return Rect{}, false
	}
	left, bottom := t.blocks[0].Rect.Left, t.blocks[0].Rect.Bottom
	right, top := t.blocks[0].Rect.Right(), t.blocks[0].Rect.Top()
	for _, b := range t.blocks[1:] {
		left = min(left, b.Rect.Left)
		bottom = min(bottom, b.Rect.Bottom)
		right = max(right, b.Rect.Right())
		top = max(top, b.Rect.Top())
	}
	return Rect{Left: left, Bottom: bottom, Width: right - left, Height: top - bottom}, true
}
