package dto

// Point is a lat/lon pair used in request bodies
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// LivabilityRequest asks for a livability score around a center point.
// RadiusM of 0 means "use the configured default".
type LivabilityRequest struct {
	Lat        float64  `json:"lat" validate:"min=-90,max=90"`
	Lon        float64  `json:"lon" validate:"min=-180,max=180"`
	RadiusM    float64  `json:"radius_m" validate:"omitempty,gt=0"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,dive,required"`
}

// CommuteRequest asks for a multi-modal commute comparison.
// An omitted Modes list means all supported modes.
type CommuteRequest struct {
	Origin      Point    `json:"origin" validate:"required"`
	Destination Point    `json:"destination" validate:"required"`
	Modes       []string `json:"modes,omitempty" validate:"omitempty,dive,required"`
}

// ExploreRequest asks for a descriptive area summary
type ExploreRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"omitempty,gt=0"`
	// Limit caps the highlights list, 0 means the configured default
	Limit int `json:"limit,omitempty" validate:"omitempty,gt=0,lte=50"`
}

// NearbyRequest asks for places around a point, optionally narrowed to one
// category. An empty Category means all categories.
type NearbyRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM  float64 `json:"radius_m" validate:"omitempty,gt=0"`
	Category string  `json:"category,omitempty"`
	// Limit caps the result list, 0 means the configured default
	Limit int `json:"limit,omitempty" validate:"omitempty,gt=0,lte=50"`
}

// GeocodeRequest is a forward-geocoding query
type GeocodeRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,gt=0,lte=20"`
}

// ReverseGeocodeRequest resolves a coordinate to an address
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}
