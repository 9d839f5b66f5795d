package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/bookingflow/internal/pkg/models"
)

// GeohashPrecision is used for stored fixes and SOS location text (~150m cells)
const GeohashPrecision uint = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// LocationText renders a fix as "lat, lng" with six decimals
func LocationText(location models.Location) string {
	return fmt.Sprintf("%.6f, %.6f", location.Latitude, location.Longitude)
}

// DistanceMeters returns the haversine distance between two fixes
func DistanceMeters(a, b models.Location) float64 {
	const earthRadius = 6371000.0

	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
