package services

import (
	"strings"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"

	"github.com/google/uuid"
)

type TripService struct {
	TripRepo  repositories.TripRepository
	RequestID string
}

func (s TripService) List() ([]models.Trip, error) {
	return s.TripRepo.List()
}

func (s TripService) Get(id string) (models.Trip, error) {
	if strings.TrimSpace(id) == "" {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "trip id required"}
	}
	return s.TripRepo.GetByID(id)
}

// Create adds a catalog trip. A missing id gets a generated one.
func (s TripService) Create(t models.Trip) (models.Trip, error) {
	if err := validateTrip(&t); err != nil {
		return t, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := s.TripRepo.Create(t); err != nil {
		return t, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "trip", "create", "id="+t.ID)
	return t, nil
}

// Update replaces the trip record by id. Bookings keep their snapshots, so
// the edit never rewrites history.
func (s TripService) Update(t models.Trip) (models.Trip, error) {
	if strings.TrimSpace(t.ID) == "" {
		return t, domain.ValidationError{Field: "id", Msg: "trip id required"}
	}
	if err := validateTrip(&t); err != nil {
		return t, err
	}
	if err := s.TripRepo.Update(t); err != nil {
		return t, err
	}
	utils.LogEvent(s.RequestID, "trip", "update", "id="+t.ID)
	return t, nil
}

// Delete removes a trip. A trip with booking history needs the force flag;
// deleting it never touches those bookings' snapshots.
func (s TripService) Delete(id string, force bool) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "trip id required"}
	}
	if !force {
		n, err := s.TripRepo.CountBookings(id)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		if n > 0 {
			return domain.ConflictError{Resource: "trip", Msg: "trip has existing bookings, pass force=true to delete anyway"}
		}
	}
	if err := s.TripRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", "id="+id)
	return nil
}

func validateTrip(t *models.Trip) error {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	t.Location = strings.TrimSpace(t.Location)

	switch {
	case t.Name == "":
		return domain.ValidationError{Field: "name", Msg: "name required"}
	case t.Location == "":
		return domain.ValidationError{Field: "location", Msg: "location required"}
	case t.BasePrice <= 0:
		return domain.ValidationError{Field: "basePrice", Msg: "base price must be positive"}
	}
	return nil
}
