package models

import "time"

// Booking status values.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Accommodation tiers. Anything else is priced as standard.
const (
	AccommodationStandard = "standard"
	AccommodationDeluxe   = "deluxe"
	AccommodationLuxury   = "luxury"
)

// Booking is one reservation tied to a trip snapshot and a customer email.
// TotalAmount reflects the customer's discount state at booking time and is
// never recomputed afterwards.
type Booking struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Trip          Trip      `json:"trip"` // owned copy, not a live reference
	Travelers     int       `json:"travelers"`
	TravelDate    string    `json:"date"`
	Accommodation string    `json:"accommodation"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   int64     `json:"totalAmount"`
	BookedAt      time.Time `json:"bookedAt"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	Status *string
}
