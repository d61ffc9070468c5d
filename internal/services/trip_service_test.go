package services

import (
	"testing"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateTripValidates(t *testing.T) {
	svc := TripService{}

	cases := []models.Trip{
		{Location: "Tanzania", BasePrice: 10000},          // missing name
		{Name: "Zanzibar", BasePrice: 10000},              // missing location
		{Name: "Zanzibar", Location: "Tanzania"},          // zero price
		{Name: "Zanzibar", Location: "TZ", BasePrice: -5}, // negative price
	}
	for i, in := range cases {
		if _, err := svc.Create(in); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestCreateTripAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	created, err := svc.Create(models.Trip{Name: "Okavango Delta", Location: "Botswana", BasePrice: 18000})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteTripWithBookingsNeedsForce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	if err := svc.Delete("zanzibar", false); !domain.IsConflict(err) {
		t.Fatalf("expected conflict without force, got %v", err)
	}
}

func TestDeleteTripForceBypassesBookingCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	// no COUNT query expected: force skips the booking check
	mock.ExpectExec("DELETE FROM trips").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	if err := svc.Delete("zanzibar", true); err != nil {
		t.Fatalf("force delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteMissingTripNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM trips").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	if err := svc.Delete("nope", false); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
