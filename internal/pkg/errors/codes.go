package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Radius must be positive",
		http.StatusBadRequest,
	)

	ErrSameOriginDestination = New(
		"SAME_ORIGIN_DESTINATION",
		"Origin and destination must differ",
		http.StatusBadRequest,
	)

	ErrInvalidTravelMode = New(
		"INVALID_TRAVEL_MODE",
		"Invalid travel mode",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Invalid place category",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// Provider-level failures. These never cross the use-case boundary as
	// request errors; aggregation converts them into partial-data markers.
	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"Upstream data provider unavailable",
		http.StatusBadGateway,
	)

	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route found between the given points",
		http.StatusNotFound,
	)

	ErrGeocodeFailed = New(
		"GEOCODE_FAILED",
		"Geocoding request failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
