package domain

// Ground represents a physical playing area as listed by the turf API
// for a (date, hours) pair
type Ground struct {
	ID           string
	Name         string
	Location     string
	Available    bool
	Price        float64  // total price for the requested hours
	PricePerHour *float64 // optional
	Description  *string  // optional
}

// FindGround returns the ground with the given ID
func FindGround(grounds []Ground, id string) (Ground, bool) {
	for _, g := range grounds {
		if g.ID == id {
			return g, true
		}
	}
	return Ground{}, false
}
