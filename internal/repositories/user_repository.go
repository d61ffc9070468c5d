package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, strings.TrimSpace(email)).Scan(&n)
	return n > 0, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash)
		VALUES (?, ?, ?, ?)
	`, u.Name, strings.TrimSpace(u.Email), u.Phone, passwordHash)
	if err != nil {
		return u, err
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

// GetByEmail returns the user plus the stored bcrypt hash for verification.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, password_hash
		FROM users
		WHERE email = ?
		LIMIT 1
	`, strings.TrimSpace(email)).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &hash)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, hash, err
}
