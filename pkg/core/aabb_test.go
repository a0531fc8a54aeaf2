package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurround_ContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, 2, 2), NewVec3(3, 3, 3))

	surround := Surround(a, b)

	assert.True(t, surround.Contains(a))
	assert.True(t, surround.Contains(b))
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	assert.True(t, box.Hit(ray, 0, 100))

	miss := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	assert.False(t, box.Hit(miss, 0, 100))
}

func TestNextAxis_Cycles(t *testing.T) {
	assert.Equal(t, 1, NextAxis(0))
	assert.Equal(t, 2, NextAxis(1))
	assert.Equal(t, 0, NextAxis(2))
}

func TestTimeRange_Contains(t *testing.T) {
	wide := TimeRange{Start: 0, End: 1}
	narrow := TimeRange{Start: 0.2, End: 0.8}
	assert.True(t, wide.Contains(narrow))
	assert.False(t, narrow.Contains(wide))
}
