package handlers

import (
	"net/http"

	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{RequestID: middleware.GetRequestID(c)}
}

// GetETicket handles GET /api/bookings/:reference/eticket.
func GetETicket(c *gin.Context) {
	data, filename, err := docsService(c).GenerateETicket(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetInvoice handles GET /api/bookings/:reference/invoice.
func GetInvoice(c *gin.Context) {
	data, filename, err := docsService(c).GenerateInvoice(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
