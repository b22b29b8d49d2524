package domain

// Category is a closed set of semantic place categories.
// Values are stable string identifiers exposed as-is in API responses.
type Category string

const (
	CategoryGrocery       Category = "grocery"
	CategoryRestaurant    Category = "restaurant"
	CategoryHealthcare    Category = "healthcare"
	CategoryPharmacy      Category = "pharmacy"
	CategoryEducation     Category = "education"
	CategoryTransit       Category = "transit"
	CategoryPark          Category = "park"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryServices      Category = "services"

	// CategoryUnclassified marks places no rule matched
	CategoryUnclassified Category = "unclassified"
)

// AllCategories returns every scoreable category in stable order
func AllCategories() []Category {
	return []Category{
		CategoryGrocery,
		CategoryRestaurant,
		CategoryHealthcare,
		CategoryPharmacy,
		CategoryEducation,
		CategoryTransit,
		CategoryPark,
		CategorySports,
		CategoryEntertainment,
		CategoryShopping,
		CategoryServices,
	}
}

// IsValidCategory reports whether s names a scoreable category
func IsValidCategory(s string) bool {
	for _, c := range AllCategories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// TagFilter is an OSM key=value selector. An empty Value matches any value.
type TagFilter struct {
	Key   string
	Value string
}

// ClassificationRule binds a tag filter to a category.
// Rules are evaluated in order, first match wins.
type ClassificationRule struct {
	Filter   TagFilter
	Category Category
}

// classificationRules is the ordered rule table for mapping raw OSM tags to
// categories. More specific rules (pharmacy before healthcare, supermarket
// before shopping) must come first.
var classificationRules = []ClassificationRule{
	// Groceries
	{TagFilter{"shop", "supermarket"}, CategoryGrocery},
	{TagFilter{"shop", "convenience"}, CategoryGrocery},
	{TagFilter{"shop", "grocery"}, CategoryGrocery},
	{TagFilter{"shop", "greengrocer"}, CategoryGrocery},
	{TagFilter{"shop", "bakery"}, CategoryGrocery},
	{TagFilter{"shop", "butcher"}, CategoryGrocery},

	// Food & drink
	{TagFilter{"amenity", "restaurant"}, CategoryRestaurant},
	{TagFilter{"amenity", "cafe"}, CategoryRestaurant},
	{TagFilter{"amenity", "fast_food"}, CategoryRestaurant},
	{TagFilter{"amenity", "bar"}, CategoryRestaurant},

	// Healthcare (pharmacy is its own category)
	{TagFilter{"amenity", "pharmacy"}, CategoryPharmacy},
	{TagFilter{"amenity", "hospital"}, CategoryHealthcare},
	{TagFilter{"amenity", "clinic"}, CategoryHealthcare},
	{TagFilter{"amenity", "doctors"}, CategoryHealthcare},
	{TagFilter{"amenity", "dentist"}, CategoryHealthcare},

	// Education
	{TagFilter{"amenity", "school"}, CategoryEducation},
	{TagFilter{"amenity", "kindergarten"}, CategoryEducation},
	{TagFilter{"amenity", "college"}, CategoryEducation},
	{TagFilter{"amenity", "university"}, CategoryEducation},
	{TagFilter{"amenity", "library"}, CategoryEducation},

	// Public transport
	{TagFilter{"public_transport", "stop_position"}, CategoryTransit},
	{TagFilter{"public_transport", "platform"}, CategoryTransit},
	{TagFilter{"railway", "station"}, CategoryTransit},
	{TagFilter{"railway", "tram_stop"}, CategoryTransit},
	{TagFilter{"highway", "bus_stop"}, CategoryTransit},
	{TagFilter{"amenity", "bus_station"}, CategoryTransit},

	// Green spaces
	{TagFilter{"leisure", "park"}, CategoryPark},
	{TagFilter{"leisure", "garden"}, CategoryPark},
	{TagFilter{"leisure", "playground"}, CategoryPark},

	// Sports
	{TagFilter{"leisure", "sports_centre"}, CategorySports},
	{TagFilter{"leisure", "fitness_centre"}, CategorySports},
	{TagFilter{"leisure", "swimming_pool"}, CategorySports},
	{TagFilter{"leisure", "pitch"}, CategorySports},

	// Culture and entertainment
	{TagFilter{"amenity", "theatre"}, CategoryEntertainment},
	{TagFilter{"amenity", "cinema"}, CategoryEntertainment},
	{TagFilter{"amenity", "arts_centre"}, CategoryEntertainment},
	{TagFilter{"tourism", "museum"}, CategoryEntertainment},

	// Shopping (non-grocery)
	{TagFilter{"shop", "mall"}, CategoryShopping},
	{TagFilter{"shop", "department_store"}, CategoryShopping},
	{TagFilter{"shop", "clothes"}, CategoryShopping},
	{TagFilter{"shop", ""}, CategoryShopping},

	// Everyday services
	{TagFilter{"amenity", "bank"}, CategoryServices},
	{TagFilter{"amenity", "post_office"}, CategoryServices},
	{TagFilter{"amenity", "atm"}, CategoryServices},
}

// ClassifyTags maps raw OSM tags to a category using the ordered rule table.
// Deterministic: same tags always yield the same category.
func ClassifyTags(tags map[string]string) Category {
	if len(tags) == 0 {
		return CategoryUnclassified
	}
	for _, rule := range classificationRules {
		v, ok := tags[rule.Filter.Key]
		if !ok {
			continue
		}
		if rule.Filter.Value == "" || rule.Filter.Value == v {
			return rule.Category
		}
	}
	return CategoryUnclassified
}

// categoryQueryFilters lists the tag selectors queried upstream per category.
// These mirror the classification rules so that everything a query returns
// is classifiable back into the same category.
var categoryQueryFilters = map[Category][]TagFilter{
	CategoryGrocery: {
		{"shop", "supermarket"}, {"shop", "convenience"}, {"shop", "grocery"},
		{"shop", "greengrocer"}, {"shop", "bakery"}, {"shop", "butcher"},
	},
	CategoryRestaurant: {
		{"amenity", "restaurant"}, {"amenity", "cafe"}, {"amenity", "fast_food"}, {"amenity", "bar"},
	},
	CategoryPharmacy: {
		{"amenity", "pharmacy"},
	},
	CategoryHealthcare: {
		{"amenity", "hospital"}, {"amenity", "clinic"}, {"amenity", "doctors"}, {"amenity", "dentist"},
	},
	CategoryEducation: {
		{"amenity", "school"}, {"amenity", "kindergarten"}, {"amenity", "college"},
		{"amenity", "university"}, {"amenity", "library"},
	},
	CategoryTransit: {
		{"public_transport", "stop_position"}, {"public_transport", "platform"},
		{"railway", "station"}, {"railway", "tram_stop"},
		{"highway", "bus_stop"}, {"amenity", "bus_station"},
	},
	CategoryPark: {
		{"leisure", "park"}, {"leisure", "garden"}, {"leisure", "playground"},
	},
	CategorySports: {
		{"leisure", "sports_centre"}, {"leisure", "fitness_centre"},
		{"leisure", "swimming_pool"}, {"leisure", "pitch"},
	},
	CategoryEntertainment: {
		{"amenity", "theatre"}, {"amenity", "cinema"}, {"amenity", "arts_centre"}, {"tourism", "museum"},
	},
	CategoryShopping: {
		{"shop", "mall"}, {"shop", "department_store"}, {"shop", "clothes"},
	},
	CategoryServices: {
		{"amenity", "bank"}, {"amenity", "post_office"}, {"amenity", "atm"},
	},
}

// QueryFilters returns the OSM tag selectors used to fetch places of the
// category from the upstream provider
func (c Category) QueryFilters() []TagFilter {
	return categoryQueryFilters[c]
}
