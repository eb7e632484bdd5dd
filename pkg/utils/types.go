package utils

// RouteCodes represents the route found in a search URL
type RouteCodes struct {
	Departure string
	Arrival   string
}

// Key returns the route as {departure}-{arrival}
func (r RouteCodes) Key() string {
	return r.Departure + "-" + r.Arrival
}

