package services

import (
	"testing"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthenticatorExactMatch(t *testing.T) {
	auth := AdminAuthenticator{Email: "admin@travelmavericks.com", Password: "admin123"}

	sess, err := auth.Authenticate(Credentials{Email: "admin@travelmavericks.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if sess.Role != "admin" {
		t.Fatalf("role = %s, want admin", sess.Role)
	}

	if _, err := auth.Authenticate(Credentials{Email: "admin@travelmavericks.com", Password: "wrong"}); !domain.IsUnauthorized(err) {
		t.Fatalf("want unauthorized for wrong password, got %v", err)
	}
}

func TestChainFallsThroughToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT id, name, email, phone, password_hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "password_hash"}).
			AddRow(1, "Thandi", "thandi@example.com", "0800", string(hash)))

	chain := ChainAuthenticator{
		AdminAuthenticator{Email: "admin@travelmavericks.com", Password: "admin123"},
		UserAuthenticator{Users: repositories.UserRepository{DB: db}},
	}

	sess, err := chain.Authenticate(Credentials{Email: "thandi@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("user login failed: %v", err)
	}
	if sess.Role != "user" {
		t.Fatalf("role = %s, want user", sess.Role)
	}
	if sess.Name != "Thandi" {
		t.Fatalf("name = %s, want Thandi", sess.Name)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc := AuthService{
		Auth:      AdminAuthenticator{Email: "admin@travelmavericks.com", Password: "admin123"},
		JWTSecret: []byte("test-secret"),
	}

	sess, token, err := svc.Login(Credentials{Email: "admin@travelmavericks.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if token == "" {
		t.Fatalf("token missing")
	}
	if sess.Role != "admin" {
		t.Fatalf("role = %s, want admin", sess.Role)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := AuthService{Auth: AdminAuthenticator{}}
	if _, _, err := svc.Login(Credentials{}); !domain.IsValidation(err) {
		t.Fatalf("want validation error for empty credentials, got %v", err)
	}
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	svc := AuthService{}
	_, err := svc.Signup(SignupInput{
		Name:            "Thandi",
		Email:           "thandi@example.com",
		Password:        "hunter2",
		ConfirmPassword: "hunter3",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error for mismatch, got %v", err)
	}
}
