package domain

// LivabilityReport is the weighted composite score of an area.
// Immutable once computed, recomputed per request.
type LivabilityReport struct {
	Center       Coordinate           `json:"center"`
	RadiusM      float64              `json:"radius_m"`
	Address      string               `json:"address,omitempty"`
	OverallScore float64              `json:"overall_score"`
	SubScores    map[Category]float64 `json:"sub_scores"`
	Breakdown    []ProximityResult    `json:"breakdown"`
}

// CommuteLeg is a RouteLeg plus availability marker for a comparison
type CommuteLeg struct {
	Mode        TravelMode `json:"mode"`
	Available   bool       `json:"available"`
	DistanceM   float64    `json:"distance_m,omitempty"`
	DurationS   float64    `json:"duration_s,omitempty"`
	DurationMin float64    `json:"duration_min,omitempty"`
}

// CommuteReport compares route costs across travel modes
type CommuteReport struct {
	Origin         Coordinate                `json:"origin"`
	Destination    Coordinate                `json:"destination"`
	Legs           map[TravelMode]CommuteLeg `json:"legs"`
	FastestMode    TravelMode                `json:"fastest_mode,omitempty"`
	Recommendation string                    `json:"recommendation"`
}

// PlaceHighlight is a nearby place surfaced in an exploration summary
type PlaceHighlight struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Category       Category `json:"category"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	DistanceM      float64  `json:"distance_m"`
	WalkingTimeMin float64  `json:"walking_time_min"`
}

// NearbyPlaces lists places around a point, nearest first.
// Category is empty when the search spanned all categories.
type NearbyPlaces struct {
	Center   Coordinate       `json:"center"`
	RadiusM  float64          `json:"radius_m"`
	Category Category         `json:"category,omitempty"`
	Total    int              `json:"total"`
	Places   []PlaceHighlight `json:"places"`
}

// ExplorationSummary is a descriptive profile of an area
type ExplorationSummary struct {
	Center      Coordinate       `json:"center"`
	RadiusM     float64          `json:"radius_m"`
	Address     string           `json:"address,omitempty"`
	TotalPlaces int              `json:"total_places"`
	ByCategory  map[Category]int `json:"by_category"`
	Highlights  []PlaceHighlight `json:"highlights"`
}
