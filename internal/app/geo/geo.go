// Package geo holds the spherical-earth geometry of a flight: coordinates,
// bearings, haversine distance and great-circle interpolation.
package geo

import (
	"math"
)

// EarthRadiusKm is the mean earth radius (spherical approximation).
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate is inside [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// CentralAngle returns the haversine central angle between a and b, in radians.
func CentralAngle(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
func DistanceKm(a, b Coordinate) float64 {
	return EarthRadiusKm * CentralAngle(a, b)
}

// Interpolate returns the point at the given fraction of the great circle
// from -> to. Fractions outside [0,1] are clamped, identical endpoints return from.
func Interpolate(from, to Coordinate, fraction float64) Coordinate {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}

	d := CentralAngle(from, to)
	if d == 0 {
		return from
	}

	a := math.Sin((1-fraction)*d) / math.Sin(d)
	b := math.Sin(fraction*d) / math.Sin(d)

	p := unitVector(from).Scale(a).Add(unitVector(to).Scale(b))

	return Coordinate{
		Lat: toDeg(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))),
		Lon: toDeg(math.Atan2(p.Y, p.X)),
	}
}

// InitialBearing returns the initial great-circle course from -> to.
func InitialBearing(from, to Coordinate) Bearing {
	lat1, lat2 := toRad(from.Lat), toRad(to.Lat)
	dLon := toRad(to.Lon - from.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return NewBearing(toDeg(math.Atan2(y, x)))
}
