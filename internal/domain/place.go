package domain

// Place represents a point of interest returned by the upstream provider
type Place struct {
	ID       string            `json:"id"`
	Name     string            `json:"name,omitempty"`
	Lat      float64           `json:"lat"`
	Lon      float64           `json:"lon"`
	Tags     map[string]string `json:"tags,omitempty"`
	Category Category          `json:"category"`

	// Distance from the query center in meters, filled during aggregation
	Distance float64 `json:"distance_m"`
}

// ProximityResult is the per-category reduction of an aggregation query.
// NearestDistance is nil when no place of the category was found.
type ProximityResult struct {
	Category        Category `json:"category"`
	Count           int      `json:"count"`
	NearestDistance *float64 `json:"nearest_distance_m,omitempty"`
}
