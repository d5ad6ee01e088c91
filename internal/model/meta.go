package model

// Meta is the pagination metadata carried by enveloped list responses.
// Flat array responses have no meta; see normalize.List.
type Meta struct {
	Page       int
	Limit      int
	Offset     int
	Total      int
	TotalPages int
}
