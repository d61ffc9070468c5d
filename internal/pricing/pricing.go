// Package pricing holds the booking price and customer loyalty rules.
// Everything here is a pure computation; persistence and HTTP live elsewhere.
package pricing

import (
	"math"
	"strings"

	"travelmavericks/internal/domain/models"
)

// Accommodation surcharge per traveler. Unknown tiers price as standard.
const (
	DeluxeSurcharge int64 = 2000
	LuxurySurcharge int64 = 5000
)

// ReturningDiscount applies once a customer already has at least two
// completed bookings, i.e. from their third booking on.
const ReturningDiscount = 0.15

// Loyalty tiers derived from cumulative booking count.
const (
	TierNew     = "New"
	TierRegular = "Regular"
	TierLoyal   = "Loyal"
	TierVIP     = "VIP"
)

// Quote is a price breakdown for one booking.
type Quote struct {
	PerPerson    int64 `json:"perPerson"`
	BaseTotal    int64 `json:"baseTotal"`
	UpgradeTotal int64 `json:"upgradeTotal"`
	Subtotal     int64 `json:"subtotal"`
	Discounted   bool  `json:"discounted"`
	Total        int64 `json:"total"`
}

// Surcharge returns the per-traveler accommodation upgrade price.
func Surcharge(tier string) int64 {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case models.AccommodationDeluxe:
		return DeluxeSurcharge
	case models.AccommodationLuxury:
		return LuxurySurcharge
	default:
		return 0
	}
}

// NormalizeTravelers coerces a traveler count for live previews: anything
// below one falls back to one. Final submission validates separately and
// rejects non-positive counts instead.
func NormalizeTravelers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Subtotal computes (basePrice + surcharge) * travelers before any discount.
func Subtotal(basePrice int64, tier string, travelers int) int64 {
	return (basePrice + Surcharge(tier)) * int64(travelers)
}

// FinalTotal applies the returning-customer discount against the count of
// bookings the customer already had before this one. The discount trigger is
// priorCount >= 2; the admin-facing eligibility badge uses a different
// boundary (see DiscountEligible) and the two are kept separate on purpose.
func FinalTotal(subtotal int64, priorCount int) int64 {
	if priorCount >= 2 {
		return int64(math.Round(float64(subtotal) * (1 - ReturningDiscount)))
	}
	return subtotal
}

// QuoteBooking prices a booking for preview or checkout. Travelers are
// normalized for preview use; callers validating a final submission must
// check the raw count first.
func QuoteBooking(basePrice int64, tier string, travelers, priorCount int) Quote {
	travelers = NormalizeTravelers(travelers)
	perPerson := basePrice + Surcharge(tier)
	subtotal := perPerson * int64(travelers)
	total := FinalTotal(subtotal, priorCount)

	return Quote{
		PerPerson:    perPerson,
		BaseTotal:    basePrice * int64(travelers),
		UpgradeTotal: Surcharge(tier) * int64(travelers),
		Subtotal:     subtotal,
		Discounted:   total != subtotal,
		Total:        total,
	}
}

// LoyaltyStatus classifies a customer by cumulative booking count,
// evaluated after the count has been incremented.
func LoyaltyStatus(bookingCount int) string {
	switch {
	case bookingCount >= 10:
		return TierVIP
	case bookingCount >= 3:
		return TierLoyal
	case bookingCount > 1:
		return TierRegular
	default:
		return TierNew
	}
}

// DiscountEligible reports whether admin views flag the customer for the
// 15% returning discount. Threshold is count >= 3, not the >= 2 prior-count
// trigger used at checkout; both boundaries come from observed behavior.
func DiscountEligible(bookingCount int) bool {
	return bookingCount >= 3
}
