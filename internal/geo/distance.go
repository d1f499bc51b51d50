// Package geo computes straight-line distances between pickup and drop-off points.
package geo

import (
	"github.com/mmcloughlin/geohash"
	"github.com/umahmood/haversine"
)

// EarthRadiusKm is the mean Earth radius the distance is computed with.
const EarthRadiusKm = 6371.0

// Coordinate is a point in decimal degrees.
// Ranges are not enforced here; callers validate input before computing.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between a and b in kilometers.
// The result approximates distance on a sphere, not road distance.
// Non-finite inputs yield a non-finite result.
func Distance(a, b Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return km
}

// HaversineDistance is Distance taking the two points as raw degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return Distance(
		Coordinate{Latitude: lat1, Longitude: lon1},
		Coordinate{Latitude: lat2, Longitude: lon2},
	)
}

// Geohash labels c with a base32 geohash of the given length (1-12 characters).
func Geohash(c Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}
