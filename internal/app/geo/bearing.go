package geo

import "math"

// Bearing is a direction in degrees measured clockwise from true North
// (0 = North, 90 = East), always held in [0,360).
//
// Solar ephemerides usually report azimuth measured westward from South;
// such values must enter through FromAstronomical.
type Bearing float64

const (
	North Bearing = 0
	East  Bearing = 90
	South Bearing = 180
	West  Bearing = 270
)

// NewBearing normalizes an arbitrary angle in degrees into [0,360).
func NewBearing(deg float64) Bearing {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	// -1e-15 mod 360 rounds back up to 360.
	if b >= 360 {
		b = 0
	}
	return Bearing(b)
}

// FromAstronomical converts a South-referenced, westward-increasing azimuth.
func FromAstronomical(azimuthDeg float64) Bearing {
	return NewBearing(azimuthDeg + 180)
}

// Degrees returns the bearing as a plain float.
func (b Bearing) Degrees() float64 {
	return float64(b)
}

// RelativeTo returns the clockwise angle from heading to b, in [0,360).
func (b Bearing) RelativeTo(heading Bearing) Bearing {
	return NewBearing(float64(b) - float64(heading))
}

// Reverse returns the opposite direction.
func (b Bearing) Reverse() Bearing {
	return NewBearing(float64(b) + 180)
}
