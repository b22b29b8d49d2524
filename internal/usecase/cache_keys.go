package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/location-insights/internal/domain"
)

// Cache keys round coordinates to 5 decimal places (~1 m) so equivalent
// requests share entries.

func livabilityCacheKey(center domain.Coordinate, radiusM float64, categories []domain.Category) string {
	return fmt.Sprintf("livability:%.5f:%.5f:%.0f:%s",
		center.Lat, center.Lon, radiusM, categorySetKey(categories))
}

func exploreCacheKey(center domain.Coordinate, radiusM float64, limit int) string {
	return fmt.Sprintf("explore:%.5f:%.5f:%.0f:%d", center.Lat, center.Lon, radiusM, limit)
}

func nearbyCacheKey(center domain.Coordinate, radiusM float64, category string, limit int) string {
	return fmt.Sprintf("nearby:%.5f:%.5f:%.0f:%s:%d",
		center.Lat, center.Lon, radiusM, category, limit)
}

func commuteCacheKey(origin, destination domain.Coordinate, modes []domain.TravelMode) string {
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		parts = append(parts, string(m))
	}
	sort.Strings(parts)
	return fmt.Sprintf("commute:%.5f:%.5f:%.5f:%.5f:%s",
		origin.Lat, origin.Lon, destination.Lat, destination.Lon, strings.Join(parts, ","))
}

func categorySetKey(categories []domain.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
