package handlers

import (
	"net/http"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	env       intconfig.Env
	jwtSecret []byte
)

// Configure wires environment-derived settings into the handler package.
// Called once from NewRouter before any route is mounted.
func Configure(e intconfig.Env) {
	env = e
	jwtSecret = []byte(e.JWTSecret)
}

func authenticator() services.Authenticator {
	return services.ChainAuthenticator{
		services.AdminAuthenticator{Email: env.AdminEmail, Password: env.AdminPassword},
		services.UserAuthenticator{},
	}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
