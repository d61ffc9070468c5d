package services

import (
	"strings"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/pricing"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"
)

type CustomerService struct {
	CustomerRepo repositories.CustomerStatRepository
	BookingRepo  repositories.BookingRepository
	RequestID    string
}

// CustomerView decorates a stat row with derived loyalty fields for admin
// tables.
type CustomerView struct {
	models.CustomerStat
	Loyalty          string `json:"loyalty"`
	DiscountEligible bool   `json:"discountEligible"`
}

// List returns customers with derived tier, optionally filtered. Filter
// values mirror the admin dropdown: all, new (exactly one booking),
// regular (more than one, under three), loyal (three or more).
func (s CustomerService) List(filter string) ([]CustomerView, error) {
	stats, err := s.CustomerRepo.List()
	if err != nil {
		return nil, err
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := []CustomerView{}
	for _, stat := range stats {
		switch filter {
		case "loyal":
			if stat.BookingCount < 3 {
				continue
			}
		case "regular":
			if stat.BookingCount <= 1 || stat.BookingCount >= 3 {
				continue
			}
		case "new":
			if stat.BookingCount != 1 {
				continue
			}
		}
		out = append(out, CustomerView{
			CustomerStat:     stat,
			Loyalty:          pricing.LoyaltyStatus(stat.BookingCount),
			DiscountEligible: pricing.DiscountEligible(stat.BookingCount),
		})
	}
	return out, nil
}

type CustomerDetail struct {
	CustomerView
	RecentBookings []models.Booking `json:"recentBookings"`
}

// Detail returns the customer record plus their three most recent bookings.
func (s CustomerService) Detail(email string) (CustomerDetail, error) {
	stat, err := s.CustomerRepo.GetByEmail(email)
	if err != nil {
		return CustomerDetail{}, err
	}

	bookings, err := s.BookingRepo.ListByEmail(email)
	if err != nil {
		return CustomerDetail{}, domain.InternalError{Err: err}
	}
	if len(bookings) > 3 {
		bookings = bookings[len(bookings)-3:]
	}

	return CustomerDetail{
		CustomerView: CustomerView{
			CustomerStat:     stat,
			Loyalty:          pricing.LoyaltyStatus(stat.BookingCount),
			DiscountEligible: pricing.DiscountEligible(stat.BookingCount),
		},
		RecentBookings: bookings,
	}, nil
}

// IssueDiscountCode generates a one-off 15% code for a discount-eligible
// customer. Delivery (email) is out of scope; the code is returned to the
// admin caller and logged.
func (s CustomerService) IssueDiscountCode(email string) (string, error) {
	stat, err := s.CustomerRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if !pricing.DiscountEligible(stat.BookingCount) {
		return "", domain.ValidationError{Field: "email", Msg: "customer is not discount eligible"}
	}

	code := utils.NewDiscountCode()
	utils.LogEvent(s.RequestID, "customer", "discount_code", "email="+email+" code="+code)
	return code, nil
}
