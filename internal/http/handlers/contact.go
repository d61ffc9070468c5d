package handlers

import (
	"net/http"
	"strings"

	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/utils"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact handles POST /api/contact. Delivery is simulated: the
// message is logged and acknowledged, nothing is sent anywhere.
func SubmitContact(c *gin.Context) {
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		RespondError(c, http.StatusBadRequest, "name, email and message required", nil)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "contact", "submit", "from="+req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for reaching out! We'll get back to you soon."})
}
