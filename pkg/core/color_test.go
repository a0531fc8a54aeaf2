package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRGBA8_NoGamma(t *testing.T) {
	// A flat background of (0.5, 0.7, 1.0) over one sample should map
	// through the plain scale-and-truncate formula, not sqrt gamma.
	r, g, b := NewVec3(0.5, 0.7, 1.0).ToRGBA8(1)
	assert.Equal(t, uint8(128), r)
	assert.Equal(t, uint8(179), g)
	assert.Equal(t, uint8(255), b)
}

func TestToRGBA8_AveragesAcrossSamples(t *testing.T) {
	sum := NewVec3(2, 2, 2) // four samples of (0.5, 0.5, 0.5)
	r, g, b := sum.ToRGBA8(4)
	assert.Equal(t, uint8(128), r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
}

func TestToRGBA8_ClampsOverflow(t *testing.T) {
	r, g, b := NewVec3(10, 10, 10).ToRGBA8(1)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(255), g)
	assert.Equal(t, uint8(255), b)
}
