package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelmavericks/internal/config"
	"travelmavericks/internal/db"
	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT id, name, location, duration, base_price, image, COALESCE(description,'')
		FROM trips
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Duration, &t.BasePrice, &t.Image, &t.Description); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id string) (models.Trip, error) {
	var t models.Trip
	err := r.db().QueryRow(`
		SELECT id, name, location, duration, base_price, image, COALESCE(description,'')
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, strings.TrimSpace(id)).Scan(&t.ID, &t.Name, &t.Location, &t.Duration, &t.BasePrice, &t.Image, &t.Description)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip", Err: err}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) error {
	_, err := r.db().Exec(`
		INSERT INTO trips (id, name, location, duration, base_price, image, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Location, t.Duration, t.BasePrice, t.Image, db.NullIfEmpty(t.Description))
	return err
}

// Update replaces the record by id, matching the admin-edit semantics:
// the whole trip is overwritten, historical booking snapshots are untouched.
func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET name=?, location=?, duration=?, base_price=?, image=?, description=?
		WHERE id=?
	`, t.Name, t.Location, t.Duration, t.BasePrice, t.Image, db.NullIfEmpty(t.Description), t.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		if _, gerr := r.GetByID(t.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r TripRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

// CountBookings counts bookings made against a trip id, used to warn before
// deleting a trip that has booking history.
func (r TripRepository) CountBookings(tripID string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE trip_id=?`, tripID).Scan(&n)
	return n, err
}
