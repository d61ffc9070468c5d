package repositories

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/db"
	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
)

// Queryer is the subset of *sql.DB / *sql.Tx the booking queries need,
// so checkout can run inside a transaction.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, reference, customer_name, email, phone, trip_id,
	COALESCE(trip_snapshot,''), travelers, travel_date, accommodation,
	COALESCE(notes,''), status, payment_method, total_amount, booked_at`

// Insert stores a booking with its trip snapshot JSON-encoded. Runs against
// q so the caller can keep it inside the checkout transaction.
func (r BookingRepository) Insert(q Queryer, b *models.Booking) error {
	snapshot, err := json.Marshal(b.Trip)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	res, err := q.Exec(`
		INSERT INTO bookings (reference, customer_name, email, phone, trip_id, trip_snapshot,
			travelers, travel_date, accommodation, notes, status, payment_method, total_amount, booked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.Reference, b.CustomerName, b.Email, b.Phone, b.Trip.ID, string(snapshot),
		b.Travelers, b.TravelDate, b.Accommodation, db.NullIfEmpty(b.Notes), b.Status, b.PaymentMethod, b.TotalAmount, b.BookedAt)
	if err != nil {
		return err
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

// ListAll returns every booking in creation order. Admin aggregations are
// recomputed from this full list on demand, never cached incrementally.
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booked_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// List returns bookings newest first with optional status filter and paging.
func (r BookingRepository) List(status string, page, pageSize int) ([]models.Booking, int, error) {
	where := "1=1"
	args := []any{}
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != "all" {
		where = "status = ?"
		args = append(args, status)
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE `+where+`
		ORDER BY booked_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanBookings(rows)
	return out, total, err
}

func (r BookingRepository) GetByReference(reference string) (models.Booking, error) {
	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE reference = ?
		LIMIT 1
	`, strings.TrimSpace(reference))

	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// ListByEmail returns a customer's bookings in creation order.
func (r BookingRepository) ListByEmail(email string) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE email = ?
		ORDER BY booked_at ASC, id ASC
	`, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// UpdateStatus transitions a booking between confirmed and cancelled.
// The stored total is never touched.
func (r BookingRepository) UpdateStatus(reference, status string) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE reference=?`, status, strings.TrimSpace(reference))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		if _, gerr := r.GetByReference(reference); gerr != nil {
			return gerr
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b        models.Booking
		tripID   string
		snapshot string
	)
	err := row.Scan(
		&b.ID, &b.Reference, &b.CustomerName, &b.Email, &b.Phone, &tripID,
		&snapshot, &b.Travelers, &b.TravelDate, &b.Accommodation,
		&b.Notes, &b.Status, &b.PaymentMethod, &b.TotalAmount, &b.BookedAt,
	)
	if err != nil {
		return b, err
	}

	// Corrupt snapshot JSON decodes to an empty snapshot instead of failing
	// the whole read; the trip id column survives either way.
	if strings.TrimSpace(snapshot) != "" {
		if uerr := json.Unmarshal([]byte(snapshot), &b.Trip); uerr != nil {
			log.Printf("booking %s: malformed trip snapshot, using empty: %v", b.Reference, uerr)
			b.Trip = models.Trip{}
		}
	}
	if b.Trip.ID == "" {
		b.Trip.ID = tripID
	}
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
