package handlers

import (
	"net/http"
	"time"

	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func analyticsService() services.AnalyticsService {
	return services.AnalyticsService{}
}

// GetAnalyticsOverview handles GET /api/admin/analytics/overview.
func GetAnalyticsOverview(c *gin.Context) {
	overview, err := analyticsService().Overview()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetPopularDestinations handles GET /api/admin/analytics/destinations.
func GetPopularDestinations(c *gin.Context) {
	entries, err := analyticsService().PopularDestinations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"noData": true, "message": "No booking data available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": entries})
}

// GetMonthlyRevenue handles GET /api/admin/analytics/monthly-revenue.
func GetMonthlyRevenue(c *gin.Context) {
	entries, err := analyticsService().MonthlyRevenue()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"noData": true, "message": "No booking data available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": entries})
}

// GetDailyTrend handles GET /api/admin/analytics/trends. The window is always
// the seven days ending today, zero-count days included.
func GetDailyTrend(c *gin.Context) {
	entries, err := analyticsService().DailyTrend(time.Now())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": entries})
}

// GetLoyaltyDistribution handles GET /api/admin/analytics/loyalty.
func GetLoyaltyDistribution(c *gin.Context) {
	entries, err := analyticsService().LoyaltyDistribution()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"noData": true, "message": "No customer data available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"distribution": entries})
}
