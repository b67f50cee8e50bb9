package geo

import "math"

// Point is a geographic coordinate in decimal degrees (WGS 84).
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Mean returns the spherical mean of the present points, nil entries are
// skipped. Each point is projected onto the unit sphere, the Cartesian
// components are averaged and the mean vector is converted back to
// latitude/longitude. Averaging on the sphere avoids the wraparound
// artifacts a naive arithmetic mean produces near the ±180° meridian.
//
// When no point is present the result is nil, never a default coordinate.
// A degenerate near-zero mean vector keeps whatever atan2 yields.
func Mean(points []*Point) *Point {
	var x, y, z float64

	n := 0
	for _, p := range points {
		if p == nil {
			continue
		}
		lat := toRad(p.Latitude)
		lon := toRad(p.Longitude)
		x += math.Cos(lat) * math.Cos(lon)
		y += math.Cos(lat) * math.Sin(lon)
		z += math.Sin(lat)
		n++
	}

	if n == 0 {
		return nil
	}

	x /= float64(n)
	y /= float64(n)
	z /= float64(n)

	return &Point{
		Latitude:  toDeg(math.Atan2(z, math.Sqrt(x*x+y*y))),
		Longitude: toDeg(math.Atan2(y, x)),
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
