package handlers

import (
	"net/http"

	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

// GetTrips handles GET /api/trips. Public: the storefront catalog.
func GetTrips(c *gin.Context) {
	trips, err := tripService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips, "count": len(trips)})
}

// GetTripByID handles GET /api/trips/:id.
func GetTripByID(c *gin.Context) {
	trip, err := tripService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// CreateTrip handles POST /api/admin/trips.
func CreateTrip(c *gin.Context) {
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}

	created, err := tripService(c).Create(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTrip handles PUT /api/admin/trips/:id. The stored record is replaced
// wholesale; existing bookings keep their snapshot.
func UpdateTrip(c *gin.Context) {
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	t.ID = c.Param("id")

	updated, err := tripService(c).Update(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/admin/trips/:id. Deleting a trip that has
// bookings requires ?force=true and leaves those bookings intact.
func DeleteTrip(c *gin.Context) {
	force := c.Query("force") == "true"

	if err := tripService(c).Delete(c.Param("id"), force); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}
