package core

import "math"

// Vector2 is a mutable 2D vector in world units.
// World space is y-up: Up() points toward positive Y.
//
// Methods with a pointer receiver mutate and return the receiver so calls can
// be chained. The package-level functions never mutate their arguments.
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 creates a new vector.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set overwrites both components.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X = x
	v.Y = y
	return v
}

// Clone returns an independent copy.
func (v Vector2) Clone() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Add adds o to v in place.
func (v *Vector2) Add(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v in place.
func (v *Vector2) Sub(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies both components by n in place.
func (v *Vector2) Scale(n float64) *Vector2 {
	v.X *= n
	v.Y *= n
	return v
}

// Inverse returns -v.
func (v Vector2) Inverse() Vector2 {
	return Scale(v, -1)
}

// Magnitude returns the Euclidean length.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns v scaled to unit length.
// A zero vector yields NaN components; callers check Magnitude() > 0 first.
func (v Vector2) Normalized() Vector2 {
	m := v.Magnitude()
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// Add returns a + b.
func Add(a, b Vector2) Vector2 {
	c := a.Clone()
	c.Add(b)
	return c
}

// Sub returns a - b.
func Sub(a, b Vector2) Vector2 {
	c := a.Clone()
	c.Sub(b)
	return c
}

// Scale returns a * n.
func Scale(a Vector2, n float64) Vector2 {
	c := a.Clone()
	c.Scale(n)
	return c
}

// Dot returns the dot product.
func Dot(a, b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar 2D cross product (signed parallelogram area).
func Cross(a, b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns |a - b|.
func Distance(a, b Vector2) float64 {
	return Sub(a, b).Magnitude()
}

// IsParallel reports whether the cross product is exactly zero.
// No epsilon is applied, so nearly parallel float vectors may report false.
func IsParallel(a, b Vector2) bool {
	return Cross(a, b) == 0
}

// IsVertical reports whether a and b are perpendicular (dot product exactly zero).
func IsVertical(a, b Vector2) bool {
	return Dot(a, b) == 0
}

// Zero returns (0, 0).
func Zero() Vector2 { return Vector2{} }

// One returns (1, 1).
func One() Vector2 { return Vector2{X: 1, Y: 1} }

// Right returns (1, 0).
func Right() Vector2 { return Vector2{X: 1} }

// Left returns (-1, 0).
func Left() Vector2 { return Vector2{X: -1} }

// Up returns (0, 1).
func Up() Vector2 { return Vector2{Y: 1} }

// Down returns (0, -1).
func Down() Vector2 { return Vector2{Y: -1} }
