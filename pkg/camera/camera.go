// Package camera builds the thin-lens pinhole camera used to generate
// primary rays for the renderer.
package camera

import (
	"math"
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
)

// Camera generates rays for rendering, with optional depth-of-field via a
// thin lens and optional motion blur via a shutter interval.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutter         core.TimeRange
}

// Config holds the construction parameters for a Camera. Zero-valued fields
// fall back to the defaults documented on each field.
type Config struct {
	LookFrom core.Vec3 // camera position

	// LookAt defaults to the origin. LookFrom and LookAt must not be
	// near-equal: the view direction w = unit(LookFrom - LookAt) would be
	// undefined otherwise.
	LookAt core.Vec3

	// VUp defaults to (0,1,0) when zero.
	VUp core.Vec3

	// VerticalFOV is the full vertical field of view in degrees. Defaults
	// to 20 when zero.
	VerticalFOV float64

	// AspectRatio defaults to 1 when zero.
	AspectRatio float64

	// Aperture defaults to 0, producing an ideal pinhole (no depth of
	// field).
	Aperture float64

	// FocusDist defaults to |LookAt - LookFrom| when zero.
	FocusDist float64

	// Shutter defaults to [0,0] (no motion blur) when both fields are zero.
	Shutter core.TimeRange
}

// New builds a Camera from cfg, applying the documented defaults to any
// zero-valued field.
func New(cfg Config) *Camera {
	lookAt := cfg.LookAt

	vUp := cfg.VUp
	if vUp == (core.Vec3{}) {
		vUp = core.NewVec3(0, 1, 0)
	}

	verticalFOV := cfg.VerticalFOV
	if verticalFOV == 0 {
		verticalFOV = 20
	}

	aspectRatio := cfg.AspectRatio
	if aspectRatio == 0 {
		aspectRatio = 1
	}

	focusDist := cfg.FocusDist
	if focusDist == 0 {
		focusDist = cfg.LookFrom.Subtract(lookAt).Length()
	}

	theta := verticalFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := aspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(lookAt).Unit()
	u := vUp.Cross(w).Unit()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeftCorner := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		shutter:         cfg.Shutter,
	}
}

// GetRay generates a ray through screen coordinates (s, t), where 0 <= s,t
// <= 1, jittered across the lens disk for depth of field and sampled
// uniformly across the shutter interval for motion blur. The returned
// direction is intentionally unnormalized.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	time := c.shutter.Start
	if c.shutter.End > c.shutter.Start {
		time = c.shutter.Start + random.Float64()*(c.shutter.End-c.shutter.Start)
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, time)
}
