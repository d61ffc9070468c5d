package models

// CustomerStat is the aggregate loyalty record keyed by customer email.
// Created on first booking, incremented on every completed booking, never
// deleted even when all of the customer's bookings are cancelled.
type CustomerStat struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	BookingCount int    `json:"bookingCount"`
	TotalSpent   int64  `json:"totalSpent"`
}
