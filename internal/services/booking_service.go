package services

import (
	"database/sql"
	"strings"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/pricing"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"
)

type BookingService struct {
	TripRepo     repositories.TripRepository
	BookingRepo  repositories.BookingRepository
	CustomerRepo repositories.CustomerStatRepository
	DB           *sql.DB
	RequestID    string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// CardDetails is only inspected when payment method is "card". Payment is
// simulated; nothing here touches a gateway.
type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type CheckoutInput struct {
	TripID        string       `json:"tripId"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Travelers     int          `json:"travelers"`
	TravelDate    string       `json:"date"`
	Accommodation string       `json:"accommodation"`
	Notes         string       `json:"notes"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *CardDetails `json:"card,omitempty"`
}

// Quote prices a booking for live preview. A missing or zero traveler count
// previews as one traveler; the discount reflects the customer's current
// stats when an email is provided.
func (s BookingService) Quote(tripID, accommodation, email string, travelers int) (pricing.Quote, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return pricing.Quote{}, err
	}

	prior := 0
	if strings.TrimSpace(email) != "" {
		if stat, err := s.CustomerRepo.GetByEmail(email); err == nil {
			prior = stat.BookingCount
		}
	}
	return pricing.QuoteBooking(trip.BasePrice, accommodation, travelers, prior), nil
}

// Checkout validates the submission, prices it against the customer's prior
// booking count, and records booking plus stat update in one transaction.
// The discount decision reads the old count; the increment happens after.
func (s BookingService) Checkout(in CheckoutInput) (models.Booking, error) {
	if err := validateCheckout(&in); err != nil {
		return models.Booking{}, err
	}

	trip, err := s.TripRepo.GetByID(in.TripID)
	if err != nil {
		return models.Booking{}, err
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	prior, err := s.CustomerRepo.PriorCount(tx, in.Email)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	quote := pricing.QuoteBooking(trip.BasePrice, in.Accommodation, in.Travelers, prior)

	booking := models.Booking{
		Reference:     utils.NewBookingReference(),
		CustomerName:  in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Trip:          trip, // snapshot: owned copy at booking time
		Travelers:     in.Travelers,
		TravelDate:    in.TravelDate,
		Accommodation: normalizeAccommodation(in.Accommodation),
		Notes:         in.Notes,
		Status:        models.BookingConfirmed,
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   quote.Total,
		BookedAt:      utils.NowUTC(),
	}

	if err := s.BookingRepo.Insert(tx, &booking); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := s.CustomerRepo.ApplyBooking(tx, in.Email, in.Name, quote.Total); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "checkout",
		"reference="+booking.Reference+" total="+utils.FormatRand(booking.TotalAmount))
	return booking, nil
}

func (s BookingService) GetByReference(reference string) (models.Booking, error) {
	if strings.TrimSpace(reference) == "" {
		return models.Booking{}, domain.ValidationError{Field: "reference", Msg: "reference required"}
	}
	return s.BookingRepo.GetByReference(reference)
}

// UpdateStatus flips a booking between confirmed and cancelled. Customer
// stats are monotonic and stay untouched by cancellation.
func (s BookingService) UpdateStatus(reference, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != models.BookingConfirmed && status != models.BookingCancelled {
		return domain.ValidationError{Field: "status", Msg: "must be confirmed or cancelled"}
	}
	if err := s.BookingRepo.UpdateStatus(reference, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "update_status", "reference="+reference+" status="+status)
	return nil
}

func validateCheckout(in *CheckoutInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.TravelDate = strings.TrimSpace(in.TravelDate)

	switch {
	case in.TripID == "":
		return domain.ValidationError{Field: "tripId", Msg: "trip required"}
	case in.Name == "":
		return domain.ValidationError{Field: "name", Msg: "name required"}
	case in.Email == "":
		return domain.ValidationError{Field: "email", Msg: "email required"}
	case in.TravelDate == "":
		return domain.ValidationError{Field: "date", Msg: "travel date required"}
	}

	if _, err := utils.ParseDate(in.TravelDate); err != nil {
		return domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}

	// Live previews coerce to 1; final submission rejects instead.
	if in.Travelers <= 0 {
		return domain.ValidationError{Field: "travelers", Msg: "invalid traveler count"}
	}

	if in.PaymentMethod == "" {
		in.PaymentMethod = "card"
	}
	if in.PaymentMethod == "card" {
		if err := validateCard(in.Card); err != nil {
			return err
		}
	}
	return nil
}

func validateCard(card *CardDetails) error {
	if card == nil || card.Number == "" || card.Name == "" || card.Expiry == "" || card.CVV == "" {
		return domain.ValidationError{Field: "card", Msg: "please fill in all card details"}
	}
	if len(utils.DigitsOnly(card.Number)) < 13 {
		return domain.ValidationError{Field: "card.number", Msg: "invalid card number"}
	}
	if len(utils.DigitsOnly(card.CVV)) < 3 {
		return domain.ValidationError{Field: "card.cvv", Msg: "invalid cvv"}
	}
	return nil
}

func normalizeAccommodation(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case models.AccommodationDeluxe:
		return models.AccommodationDeluxe
	case models.AccommodationLuxury:
		return models.AccommodationLuxury
	default:
		return models.AccommodationStandard
	}
}
