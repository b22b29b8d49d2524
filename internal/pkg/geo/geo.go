package geo

import (
	"math"

	"github.com/location-insights/internal/domain"
)

// earthRadiusM is the mean Earth radius in meters (WGS-84)
const earthRadiusM = 6371000.0

// metersPerDegreeLat is the approximate length of one degree of latitude
const metersPerDegreeLat = 111000.0

// bboxMargin overestimates bounding boxes so that nearest neighbors right at
// the radius edge are never clipped by the degree approximation.
const bboxMargin = 1.02

// Haversine returns the great-circle distance between two points in meters
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// Distance returns the great-circle distance between two coordinates in meters
func Distance(a, b domain.Coordinate) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// BoundingBoxAround returns a degree-delta box guaranteed to contain every
// point within radiusMeters of the center. Longitude delta is scaled by
// cos(lat); near the poles the box degenerates to the full longitude range.
func BoundingBoxAround(center domain.Coordinate, radiusMeters float64) domain.BoundingBox {
	latDelta := radiusMeters / metersPerDegreeLat * bboxMargin

	cosLat := math.Cos(center.Lat * math.Pi / 180.0)
	var lonDelta float64
	if cosLat > 1e-6 {
		lonDelta = radiusMeters / (metersPerDegreeLat * cosLat) * bboxMargin
	} else {
		lonDelta = 180.0
	}

	return domain.BoundingBox{
		MinLat: math.Max(center.Lat-latDelta, -90),
		MinLon: math.Max(center.Lon-lonDelta, -180),
		MaxLat: math.Min(center.Lat+latDelta, 90),
		MaxLon: math.Min(center.Lon+lonDelta, 180),
	}
}

// ValidateCoordinates reports whether lat/lon are finite and in range
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
