package engine

import "math"

// Vec is a 2D point or displacement in arena units
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Norm returns the unit vector, or the zero vector for zero length
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Rotate rotates v by angle radians counter-clockwise
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// FromAngle returns the unit vector for a heading in radians
func FromAngle(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{cos, sin}
}
