package dto

import "github.com/location-insights/internal/domain"

// GeocodeResponse lists forward-geocoding candidates
type GeocodeResponse struct {
	Results []domain.GeocodeResult `json:"results"`
	Total   int                    `json:"total"`
}

// ReverseGeocodeResponse carries a resolved address
type ReverseGeocodeResponse struct {
	Address domain.Address `json:"address"`
}
