package handlers

import (
	"net/http"
	"strconv"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

type quoteRequest struct {
	TripID        string `json:"tripId"`
	Accommodation string `json:"accommodation"`
	Travelers     int    `json:"travelers"`
	Email         string `json:"email"`
}

// QuoteBooking handles POST /api/bookings/quote: the live price preview for
// the checkout form. No booking is created.
func QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	quote, err := bookingService(c).Quote(req.TripID, req.Accommodation, req.Email, req.Travelers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBooking handles POST /api/bookings: the full checkout. Payment is
// simulated; a valid-looking card form is enough.
func CreateBooking(c *gin.Context) {
	var in services.CheckoutInput
	if !BindJSONOrError(c, &in) {
		return
	}

	booking, err := bookingService(c).Checkout(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking confirmed", "booking": booking})
}

// GetBooking handles GET /api/bookings/:reference.
func GetBooking(c *gin.Context) {
	booking, err := bookingService(c).GetByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings handles GET /api/admin/bookings with optional ?status= and
// page/pageSize query params.
func ListBookings(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	svc := bookingService(c)
	bookings, total, err := svc.BookingRepo.List(status, page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": domain.Pagination{Page: page, PageSize: pageSize, Total: total},
	})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus handles PUT /api/admin/bookings/:reference/status.
func UpdateBookingStatus(c *gin.Context) {
	var req statusUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	reference := c.Param("reference")
	if err := bookingService(c).UpdateStatus(reference, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "reference": reference, "status": req.Status})
}
