package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
)

type CustomerStatRepository struct {
	DB *sql.DB
}

func (r CustomerStatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CustomerStatRepository) GetByEmail(email string) (models.CustomerStat, error) {
	var s models.CustomerStat
	err := r.db().QueryRow(`
		SELECT email, name, booking_count, total_spent
		FROM customer_stats
		WHERE email = ?
		LIMIT 1
	`, strings.TrimSpace(email)).Scan(&s.Email, &s.Name, &s.BookingCount, &s.TotalSpent)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "customer", Err: err}
	}
	return s, err
}

// PriorCount reads the booking count before a new booking is recorded.
// A customer without a stat row has a prior count of zero. Runs against q
// so checkout can read it inside the same transaction as the update.
func (r CustomerStatRepository) PriorCount(q Queryer, email string) (int, error) {
	var n int
	err := q.QueryRow(`
		SELECT booking_count FROM customer_stats WHERE email = ? FOR UPDATE
	`, strings.TrimSpace(email)).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

// ApplyBooking creates the stat row on first booking and then increments
// count and cumulative spend. Rows are never deleted afterwards.
func (r CustomerStatRepository) ApplyBooking(q Queryer, email, name string, amount int64) error {
	_, err := q.Exec(`
		INSERT INTO customer_stats (email, name, booking_count, total_spent)
		VALUES (?, ?, 1, ?)
		ON DUPLICATE KEY UPDATE
			booking_count = booking_count + 1,
			total_spent = total_spent + VALUES(total_spent)
	`, strings.TrimSpace(email), strings.TrimSpace(name), amount)
	return err
}

func (r CustomerStatRepository) List() ([]models.CustomerStat, error) {
	rows, err := r.db().Query(`
		SELECT email, name, booking_count, total_spent
		FROM customer_stats
		ORDER BY total_spent DESC, email ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CustomerStat{}
	for rows.Next() {
		var s models.CustomerStat
		if err := rows.Scan(&s.Email, &s.Name, &s.BookingCount, &s.TotalSpent); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
