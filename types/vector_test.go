package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Ops(t *testing.T) {
	v := XY(3, 4)

	assert.Equal(t, float32(5), v.Len())
	assert.Equal(t, XY(4, 6), v.Add(XY(1, 2)))
	assert.Equal(t, XY(2, 2), v.Sub(XY(1, 2)))
	assert.Equal(t, XY(6, 8), v.Mul(2))
	assert.True(t, v.ApproxEqual(XY(3.0000001, 4)))
}

func TestVec3Clamp(t *testing.T) {
	type spec struct {
		in  Vec3
		exp Vec3
	}
	specs := []spec{
		{XYZ(0.5, 0.5, 0.5), XYZ(0.5, 0.5, 0.5)},
		{XYZ(-1, 2, 0), XYZ(0, 1, 0)},
		{XYZ(1.5, -0.1, 1), XYZ(1, 0, 1)},
	}

	for index, s := range specs {
		assert.Equal(t, s.exp, s.in.Clamp01(), "spec %d", index)
	}
}
