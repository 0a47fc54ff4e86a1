package mesh

import (
	"fmt"
	"math"

	"github.com/achilleasa/displaymgr/types"
	"github.com/go-gl/mathgl/mgl32"
)

// Generate the vertices of a regular polygon centered at center. The first
// vertex is the center itself so the result can be drawn as a triangle fan;
// the last vertex repeats the first rim vertex to close the fan.
func Polygon(center types.Vec2, radius float32, sides int) ([]types.Vec2, error) {
	if sides < 3 {
		return nil, fmt.Errorf("mesh: polygon needs at least 3 sides; got %d", sides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("mesh: polygon radius must be positive; got %f", radius)
	}

	step := 2 * math.Pi / float32(sides)
	rim := mgl32.Vec2{0, -radius}
	out := make([]types.Vec2, 0, sides+2)
	out = append(out, center)
	for side := 0; side <= sides; side++ {
		p := mgl32.Rotate2D(step * float32(side%sides)).Mul2x1(rim)
		out = append(out, types.XY(center[0]+p[0], center[1]+p[1]))
	}
	return out, nil
}

// Generate an axis-aligned rectangle as 4 vertices and 6 triangle indices.
func Rect(min, max types.Vec2) ([]types.Vec2, []uint32, error) {
	if max[0] <= min[0] || max[1] <= min[1] {
		return nil, nil, fmt.Errorf("mesh: invalid rect bounds %v - %v", min, max)
	}

	vertices := []types.Vec2{
		min,
		types.XY(max[0], min[1]),
		max,
		types.XY(min[0], max[1]),
	}
	return vertices, []uint32{0, 1, 2, 2, 3, 0}, nil
}

// Apply scale, then a rotation (in degrees) around pivot, then a translation
// to a list of vertices.
func Transform(vertices []types.Vec2, pivot types.Vec2, scale, degrees float32, offset types.Vec2) []types.Vec2 {
	m := mgl32.Translate2D(offset[0]+pivot[0], offset[1]+pivot[1]).
		Mul3(mgl32.HomogRotate2D(mgl32.DegToRad(degrees))).
		Mul3(mgl32.Scale2D(scale, scale)).
		Mul3(mgl32.Translate2D(-pivot[0], -pivot[1]))

	out := make([]types.Vec2, len(vertices))
	for index, v := range vertices {
		p := m.Mul3x1(mgl32.Vec3{v[0], v[1], 1})
		out[index] = types.XY(p[0], p[1])
	}
	return out
}

// Get the average of a list of vertices.
func Centroid(vertices []types.Vec2) types.Vec2 {
	if len(vertices) == 0 {
		return types.Vec2{}
	}

	var sum types.Vec2
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float32(len(vertices)))
}
