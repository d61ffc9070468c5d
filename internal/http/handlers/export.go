package handlers

import (
	"net/http"

	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportBookings handles GET /api/admin/bookings/export?format=csv|xlsx and streams
// the full booking list as a file download. Default format is csv.
func ExportBookings(c *gin.Context) {
	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err = svc.CSV()
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = svc.XLSX()
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		RespondError(c, http.StatusBadRequest, "unsupported format, use csv or xlsx", nil)
		return
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
