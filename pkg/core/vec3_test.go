package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Dot(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)
	assert.Equal(t, 32.0, a.Dot(b))
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3_Unit(t *testing.T) {
	v := NewVec3(3, 0, 4)
	assert.InDelta(t, 1.0, v.Unit().Length(), 1e-9)
}

func TestVec3_Unit_Zero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Unit())
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(1, 1, 0), v.Reflect(n))
}

func TestVec3_NearZero(t *testing.T) {
	assert.True(t, NewVec3(1e-4, -1e-4, 0).NearZero())
	assert.False(t, NewVec3(0.1, 0, 0).NearZero())
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	assert.Equal(t, NewVec3(0, 0.5, 1), v.Clamp(0, 1))
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomInUnitDisk_StaysInPlaneAndDisk(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomInUnitDisk(random)
		assert.Equal(t, 0.0, v.Z)
		assert.LessOrEqual(t, v.LengthSquared(), 1.0)
	}
}
