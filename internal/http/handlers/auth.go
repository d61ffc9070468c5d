package handlers

import (
	"net/http"

	"travelmavericks/internal/http/middleware"
	"travelmavericks/internal/services"

	"github.com/gin-gonic/gin"
)

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Auth:      authenticator(),
		JWTSecret: jwtSecret,
		RequestID: middleware.GetRequestID(c),
	}
}

// Login handles POST /api/auth/login for both admin and regular users.
func Login(c *gin.Context) {
	var creds services.Credentials
	if !BindJSONOrError(c, &creds) {
		return
	}

	sess, token, err := authService(c).Login(creds)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email": sess.Email,
			"name":  sess.Name,
			"role":  sess.Role,
		},
	})
}

// Signup handles POST /api/auth/signup for customer self-registration.
func Signup(c *gin.Context) {
	var in services.SignupInput
	if !BindJSONOrError(c, &in) {
		return
	}

	user, err := authService(c).Signup(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "account created", "user": user})
}

// Me returns the identity baked into the presented token.
func Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no active session", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": sess.Email, "name": sess.Name, "role": sess.Role})
}
