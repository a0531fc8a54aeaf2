package core

// ToRGBA8 converts an accumulated color sum over sampleCount samples to an
// 8-bit sRGB triple: divide by sample count, clamp to [0, 255/256],
// multiply by 256, truncate. No gamma correction is applied.
func (v Vec3) ToRGBA8(sampleCount int) (r, g, b uint8) {
	scale := 1.0 / float64(sampleCount)
	avg := v.Multiply(scale).Clamp(0, 255.0/256.0)
	return uint8(avg.X * 256), uint8(avg.Y * 256), uint8(avg.Z * 256)
}
