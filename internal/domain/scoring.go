package domain

// CategoryScoring holds the livability tuning for a single category
type CategoryScoring struct {
	// Weight is the category's relative contribution to the overall score
	Weight float64 `json:"weight"`
	// DecayRadius is the distance in meters beyond which proximity
	// contributes nothing
	DecayRadius float64 `json:"decay_radius_m"`
}

// ScoringConfig is the immutable per-category tuning injected into the
// scoring use cases. The overall score is normalized by the sum of weights,
// so only the relative magnitudes matter.
type ScoringConfig struct {
	Categories map[Category]CategoryScoring
}

// DefaultScoringConfig returns the built-in tuning, biased toward daily-needs
// walking access (groceries and transit over entertainment).
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Categories: map[Category]CategoryScoring{
			CategoryGrocery:       {Weight: 0.20, DecayRadius: 1000},
			CategoryTransit:       {Weight: 0.15, DecayRadius: 800},
			CategoryHealthcare:    {Weight: 0.12, DecayRadius: 1500},
			CategoryEducation:     {Weight: 0.10, DecayRadius: 1500},
			CategoryPark:          {Weight: 0.10, DecayRadius: 1200},
			CategoryPharmacy:      {Weight: 0.08, DecayRadius: 1000},
			CategoryRestaurant:    {Weight: 0.08, DecayRadius: 1500},
			CategoryShopping:      {Weight: 0.06, DecayRadius: 2000},
			CategorySports:        {Weight: 0.04, DecayRadius: 2000},
			CategoryServices:      {Weight: 0.04, DecayRadius: 1500},
			CategoryEntertainment: {Weight: 0.03, DecayRadius: 2500},
		},
	}
}

// ScoringFor returns the tuning for a category. Unknown categories get zero
// weight and never contribute to the score.
func (c ScoringConfig) ScoringFor(cat Category) CategoryScoring {
	return c.Categories[cat]
}

// TotalWeight returns the sum of all configured category weights
func (c ScoringConfig) TotalWeight() float64 {
	var total float64
	for _, s := range c.Categories {
		total += s.Weight
	}
	return total
}
