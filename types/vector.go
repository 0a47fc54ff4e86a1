package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-6

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{v[0] + v2[0], v[1] + v2[1]}
}

// Subtract a vector.
func (v Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{v[0] - v2[0], v[1] - v2[1]}
}

// Multiply a 2 component vector with a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Get 2 component vector length.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1])))
}

// Returns true if both components are within epsilon of v2.
func (v Vec2) ApproxEqual(v2 Vec2) bool {
	return approxEqual(v[0], v2[0]) && approxEqual(v[1], v2[1])
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Clamp every component to the [0, 1] range.
func (v Vec3) Clamp01() Vec3 {
	out := v
	for i := range out {
		if out[i] < 0 {
			out[i] = 0
		} else if out[i] > 1 {
			out[i] = 1
		}
	}
	return out
}

// Returns true if all components are within epsilon of v2.
func (v Vec3) ApproxEqual(v2 Vec3) bool {
	return approxEqual(v[0], v2[0]) && approxEqual(v[1], v2[1]) && approxEqual(v[2], v2[2])
}

func approxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < floatCmpEpsilon
}
