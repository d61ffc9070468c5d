package models

// Trip is a bookable travel product. Records are replaced wholesale on admin
// edit; bookings keep their own snapshot so edits never rewrite history.
type Trip struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	BasePrice   int64  `json:"basePrice"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
