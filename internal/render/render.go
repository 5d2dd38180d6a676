// Package render draws the world into a core.Screen: background, decorated
// terrain and the player, all through a camera transform.
//
// View space has its origin at the bottom-left corner of the screen and is
// measured in world units. Cells are UnitsPerCellX by UnitsPerCellY units,
// and row 0 is the top of the screen.
package render

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// Viewport converts between world units and terminal cells.
type Viewport struct {
	UnitsPerCellX float64
	UnitsPerCellY float64
}

// DefaultViewport keeps cells roughly square on a typical terminal font.
func DefaultViewport() Viewport {
	return Viewport{UnitsPerCellX: 10, UnitsPerCellY: 20}
}

// Size returns the view size in world units for a w x h cell screen.
func (v Viewport) Size(w, h int) core.Vector2 {
	return core.Vec2(float64(w)*v.UnitsPerCellX, float64(h)*v.UnitsPerCellY)
}

// Cell maps a view-space point to the cell containing it.
func (v Viewport) Cell(p core.Vector2, screenH int) (col, row int) {
	col = int(math.Floor(p.X / v.UnitsPerCellX))
	row = screenH - 1 - int(math.Floor(p.Y/v.UnitsPerCellY))
	return col, row
}

// CellRect returns the cells covered by the view-space rectangle
// [left, right) x [bottom, top) as a top-left anchored core.Rect.
// Rectangles without area cover no cells.
func (v Viewport) CellRect(left, bottom, right, top float64, screenH int) core.Rect {
	c0 := int(math.Floor(left / v.UnitsPerCellX))
	c1 := int(math.Ceil(right/v.UnitsPerCellX)) - 1
	b := int(math.Floor(bottom / v.UnitsPerCellY))
	t := int(math.Ceil(top/v.UnitsPerCellY)) - 1
	if c1 < c0 || t < b {
		return core.Rect{}
	}
	return core.NewRect(c0, screenH-1-t, c1-c0+1, t-b+1)
}

// Renderer draws frames. It owns the decoration stream and re-seeds it at the
// start of every pass, so decoration is identical between frames.
type Renderer struct {
	View Viewport
	Seed int64

	rng *core.Random
}

// New creates a renderer.
func New(view Viewport, seed int64) *Renderer {
	return &Renderer{
		View: view,
		Seed: seed,
		rng:  core.NewRandom(seed),
	}
}

// Frame is everything one render pass reads.
type Frame struct {
	Camera  *camera.Camera
	Terrain *terrain.Terrain
	Player  *physics.Player
	Goal    *terrain.Rect // drawn above terrain, below the player
	Tick    int
}

// Render paints background, terrain, goal and player into dst.
func (r *Renderer) Render(dst *core.Screen, f Frame) {
	dst.Clear()
	r.rng.Seed(r.Seed)

	for i := range f.Terrain.Len() {
		r.drawBlock(dst, f.Camera, f.Terrain.Block(i), f.Tick)
	}
	if f.Goal != nil {
		r.FillRect(dst, f.Camera, *f.Goal, core.Zero(), goalRune, goalColor)
	}
	if f.Player != nil {
		box := f.Player.Box()
		r.FillRect(dst, f.Camera, terrain.R(box.Left, box.Bottom, box.Right-box.Left, box.Top-box.Bottom),
			core.Zero(), playerRune, playerColor(f.Player.OnGround))
	}
}

// FillRect fills the cells covered by world rectangle rect, displaced by anim.
// It returns the covered cell rectangle before clipping.
func (r *Renderer) FillRect(dst *core.Screen, cam *camera.Camera, rect terrain.Rect, anim core.Vector2, fill rune, c core.Color) core.Rect {
	cells := r.cellsOf(dst, cam, rect, anim)
	if !cells.Empty() {
		dst.DrawRectColor(cells, fill, c)
	}
	return cells
}

func (r *Renderer) cellsOf(dst *core.Screen, cam *camera.Camera, rect terrain.Rect, anim core.Vector2) core.Rect {
	bl := cam.Transform(core.Vec2(rect.Left, rect.Bottom), anim)
	tr := cam.Transform(core.Vec2(rect.Right(), rect.Top()), anim)
	return r.View.CellRect(bl.X, bl.Y, tr.X, tr.Y, dst.Height())
}

// drawBlock fills a block and decorates it. The number of values drawn from
// the decoration stream depends only on the block's size, so the pattern does
// not shift as the camera moves or clips the block.
func (r *Renderer) drawBlock(dst *core.Screen, cam *camera.Camera, b terrain.Block, tick int) {
	style := StyleFor(b.Material)
	cells := r.FillRect(dst, cam, b.Rect, b.Offset(tick), style.Fill, style.Color)

	cols := int(math.Ceil(b.Rect.Width / r.View.UnitsPerCellX))
	rows := int(math.Ceil(b.Rect.Height / r.View.UnitsPerCellY))
	inside := func(k, j int) bool {
		return cells.Contains(cells.X+k, cells.Y+j)
	}

	if style.SpeckleChance > 0 {
		for j := 1; j < rows; j++ {
			for k := 0; k < cols; k++ {
				if r.rng.NextInt(1, style.SpeckleChance) == 1 && inside(k, j) {
					dst.SetWithColor(cells.X+k, cells.Y+j, style.Speckle, style.SpeckleColor)
				}
			}
		}
	}

	if len(style.Edge) > 0 {
		for k := 0; k < cols; k++ {
			edge := style.Edge[r.rng.NextInt(0, len(style.Edge)-1)]
			if inside(k, 0) {
				dst.SetWithColor(cells.X+k, cells.Y, edge, style.EdgeColor)
			}
		}
	}
}
