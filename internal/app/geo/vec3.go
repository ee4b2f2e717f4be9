package geo

import "math"

// vec3 is an earth-centered unit-sphere vector used to blend great-circle points.
type vec3 struct {
	X, Y, Z float64
}

func unitVector(c Coordinate) vec3 {
	lat := toRad(c.Lat)
	lon := toRad(c.Lon)
	return vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// Add returns v + o.
func (v vec3) Add(o vec3) vec3 {
	return vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v vec3) Scale(s float64) vec3 {
	return vec3{v.X * s, v.Y * s, v.Z * s}
}
