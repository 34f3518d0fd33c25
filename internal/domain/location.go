package domain

// Location is a place entities occupy. Exactly one location should be
// flagged IsStart; it is where new players spawn.
type Location struct {
	ID      int64  `json:"location_id"`
	Name    string `json:"name"`
	IsStart bool   `json:"is_start"`
}

// LocationDescription is what a visitor sees at a location. NothingForSale
// is set when no shopkeeper at the location has stock rows, so callers can
// tell "no shop here" apart from a shop listing that happens to be empty.
type LocationDescription struct {
	Location       Location         `json:"location"`
	Listings       []ForSaleListing `json:"listings"`
	NothingForSale bool             `json:"nothing_for_sale"`
}
