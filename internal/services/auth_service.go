package services

import (
	"strings"
	"time"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticator decouples login from any specific credential scheme.
type Authenticator interface {
	Authenticate(creds Credentials) (domain.Session, error)
}

// AdminAuthenticator matches one configured credential pair in plaintext.
// Non-production placeholder carried over from the storefront; swap for a
// real scheme by replacing this collaborator.
type AdminAuthenticator struct {
	Email    string
	Password string
}

func (a AdminAuthenticator) Authenticate(creds Credentials) (domain.Session, error) {
	if strings.TrimSpace(creds.Email) == a.Email && creds.Password == a.Password {
		return domain.Session{Email: a.Email, Name: "Administrator", Role: "admin"}, nil
	}
	return domain.Session{}, domain.UnauthorizedError{Msg: "invalid credentials"}
}

// UserAuthenticator verifies against the users table with bcrypt.
type UserAuthenticator struct {
	Users repositories.UserRepository
}

func (a UserAuthenticator) Authenticate(creds Credentials) (domain.Session, error) {
	user, hash, err := a.Users.GetByEmail(creds.Email)
	if err != nil {
		return domain.Session{}, domain.UnauthorizedError{Msg: "invalid credentials", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return domain.Session{}, domain.UnauthorizedError{Msg: "invalid credentials", Err: err}
	}
	return domain.Session{Email: user.Email, Name: user.Name, Role: "user"}, nil
}

// ChainAuthenticator tries each authenticator in order; the first success
// wins. The admin check runs before the user lookup so the two sessions
// stay mutually exclusive.
type ChainAuthenticator []Authenticator

func (c ChainAuthenticator) Authenticate(creds Credentials) (domain.Session, error) {
	var lastErr error
	for _, a := range c {
		sess, err := a.Authenticate(creds)
		if err == nil {
			return sess, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = domain.UnauthorizedError{Msg: "invalid credentials"}
	}
	return domain.Session{}, lastErr
}

type AuthService struct {
	Auth      Authenticator
	Users     repositories.UserRepository
	JWTSecret []byte
	RequestID string
}

func (s AuthService) Login(creds Credentials) (domain.Session, string, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return domain.Session{}, "", domain.ValidationError{Msg: "email and password required"}
	}

	sess, err := s.Auth.Authenticate(creds)
	if err != nil {
		return domain.Session{}, "", err
	}

	token, err := s.IssueToken(sess)
	if err != nil {
		return domain.Session{}, "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "role="+sess.Role)
	return sess, token, nil
}

// IssueToken signs a 24h HS256 token carrying the session identity.
func (s AuthService) IssueToken(sess domain.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": sess.Email,
		"name":  sess.Name,
		"role":  sess.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.JWTSecret)
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s AuthService) Signup(in SignupInput) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.User{}, domain.ValidationError{Msg: "name, email and password required"}
	}
	if in.Password != in.ConfirmPassword {
		return models.User{}, domain.ValidationError{Field: "confirmPassword", Msg: "passwords do not match"}
	}

	taken, err := s.Users.EmailTaken(in.Email)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	if taken {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	user, err := s.Users.Create(models.User{Name: in.Name, Email: in.Email, Phone: in.Phone}, string(hash))
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "signup", "user_id created")
	return user, nil
}
