package handlers

import (
	"net/http"

	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func customerService(c *gin.Context) services.CustomerService {
	return services.CustomerService{RequestID: middleware.GetRequestID(c)}
}

// ListCustomers handles GET /api/admin/customers with optional
// ?filter=all|loyal|regular|new.
func ListCustomers(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")

	customers, err := customerService(c).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

// GetCustomer handles GET /api/admin/customers/:email.
func GetCustomer(c *gin.Context) {
	detail, err := customerService(c).Detail(c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// IssueDiscountCode handles POST /api/admin/customers/:email/discount-code.
func IssueDiscountCode(c *gin.Context) {
	email := c.Param("email")

	code, err := customerService(c).IssueDiscountCode(email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "code": code, "discount": "15%"})
}
