// Package vec2 provides 2D vector arithmetic and a point-slope line equation,
// the geometric primitives the mesh and hex-grid builder are expressed over.
package vec2

import "math"

// eqThreshold is the tolerance Equal uses to compare floating-point vectors.
const eqThreshold = 1e-5

// V is a 2D vector or point.
type V struct {
	X, Y float64
}

// New returns V{x, y}.
func New(x, y float64) V { return V{X: x, Y: y} }

// Between returns the vector from a to b (b - a).
func Between(a, b V) V { return V{X: b.X - a.X, Y: b.Y - a.Y} }

// Add returns v + o.
func (v V) Add(o V) V { return V{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v V) Sub(o V) V { return V{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v scaled by f.
func (v V) Scale(f float64) V { return V{X: v.X * f, Y: v.Y * f} }

// Div returns v divided by f. Dividing by zero yields the zero vector.
func (v V) Div(f float64) V {
	if f == 0 {
		return V{}
	}

	return V{X: v.X / f, Y: v.Y / f}
}

// Equal reports whether v and o are within eqThreshold on both axes.
func (v V) Equal(o V) bool {
	return math.Abs(v.X-o.X) < eqThreshold && math.Abs(v.Y-o.Y) < eqThreshold
}

// Dot returns the dot product of v and o.
func (v V) Dot(o V) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the 2D cross product (z-component) of v and o.
func (v V) Cross(o V) float64 { return v.X*o.Y - o.X*v.Y }

// Length returns the Euclidean norm of v.
func (v V) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSqrd returns the squared Euclidean norm of v, avoiding a sqrt when
// only relative comparisons are needed.
func (v V) LengthSqrd() float64 { return v.X*v.X + v.Y*v.Y }

// Distance returns the Euclidean distance between v and o.
func (v V) Distance(o V) float64 { return Between(v, o).Length() }

// DistanceSqrd returns the squared Euclidean distance between v and o.
func (v V) DistanceSqrd(o V) float64 { return Between(v, o).LengthSqrd() }

// IsZero reports whether v is exactly the zero vector.
func (v V) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Angle returns atan2(v.Y, v.X), the angle in radians between v and the
// positive X axis.
func (v V) Angle() float64 {
	if v.IsZero() {
		return 0
	}

	return math.Atan2(v.Y, v.X)
}

// Rotate returns v rotated counter-clockwise by radians.
func (v V) Rotate(radians float64) V {
	sin, cos := math.Sincos(radians)

	return V{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v V) Normalize() V {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Div(l)
}

// Reflect returns v reflected about the normal n.
func (v V) Reflect(n V) V {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Truncate caps v to maxLength, preserving direction. v is returned
// unchanged if its length is already within maxLength.
func (v V) Truncate(maxLength float64) V {
	if v.Length() <= maxLength {
		return v
	}

	return v.Normalize().Scale(maxLength)
}

// LineEquation is a non-vertical line in slope-intercept form, y = M*x + B.
type LineEquation struct {
	M, B float64
}

// NewLineEquation builds the line through p0 and p1. For a vertical segment
// (p0.X == p1.X) the slope is +Inf or -Inf, and NaN when p0 == p1; callers
// that might feed vertical segments should check M before using the line.
func NewLineEquation(p0, p1 V) LineEquation {
	m := (p1.Y - p0.Y) / (p1.X - p0.X)

	return LineEquation{M: m, B: p0.Y - p0.X*m}
}

// YAt evaluates the line at x.
func (l LineEquation) YAt(x float64) float64 { return l.M*x + l.B }
