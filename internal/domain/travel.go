package domain

// TravelMode is a closed set of routing profiles
type TravelMode string

const (
	ModeCar  TravelMode = "car"
	ModeBike TravelMode = "bike"
	ModeFoot TravelMode = "foot"
)

// AllTravelModes returns every mode in tie-break order (car, bike, foot)
func AllTravelModes() []TravelMode {
	return []TravelMode{ModeCar, ModeBike, ModeFoot}
}

// IsValidTravelMode reports whether s names a supported mode
func IsValidTravelMode(s string) bool {
	switch TravelMode(s) {
	case ModeCar, ModeBike, ModeFoot:
		return true
	}
	return false
}

// OSRMProfile returns the OSRM routing profile for the mode
func (m TravelMode) OSRMProfile() string {
	switch m {
	case ModeCar:
		return "driving"
	case ModeBike:
		return "cycling"
	case ModeFoot:
		return "walking"
	}
	return "driving"
}

// RouteLeg is the cost of traveling between two points with a single mode
type RouteLeg struct {
	Mode      TravelMode `json:"mode"`
	DistanceM float64    `json:"distance_m"`
	DurationS float64    `json:"duration_s"`
}
