package geo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	earthRadiusKM = 6371.0
	// EarthRadiusMeters is the mean earth radius used for every distance in the repo.
	EarthRadiusMeters = earthRadiusKM * 1000
)

// HaversineDistance returns the great-circle distance in meters between two points in degrees.
func HaversineDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, lonOne)
	b := s2.LatLngFromDegrees(latTwo, lonTwo)
	return a.Distance(b).Radians() * EarthRadiusMeters
}

func toVector(lat, lon float64) r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)).Vector
}

// ChordDistance returns the straight-line distance in meters through the earth
// between two points. It never exceeds HaversineDistance.
func ChordDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	return toVector(latTwo, lonTwo).Sub(toVector(latOne, lonOne)).Norm() * EarthRadiusMeters
}

// LocalOffset returns the east and north components in meters of the chord from
// point one to point two, measured in the tangent plane at point two.
// sqrt(east²+north²) never exceeds ChordDistance. The plane only depends on point
// two, so offsets towards a fixed target satisfy the triangle inequality.
func LocalOffset(latOne, lonOne, latTwo, lonTwo float64) (east, north float64) {
	chord := toVector(latTwo, lonTwo).Sub(toVector(latOne, lonOne))

	phi, lambda := degToRad(latTwo), degToRad(lonTwo)

	eastAxis := r3.Vector{X: -math.Sin(lambda), Y: math.Cos(lambda), Z: 0}
	northAxis := r3.Vector{
		X: -math.Sin(phi) * math.Cos(lambda),
		Y: -math.Sin(phi) * math.Sin(lambda),
		Z: math.Cos(phi),
	}
	return chord.Dot(eastAxis) * EarthRadiusMeters, chord.Dot(northAxis) * EarthRadiusMeters
}
