package domain

// Item is a catalog item definition. Items are seeded once and never mutated.
type Item struct {
	ID          int64  `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
