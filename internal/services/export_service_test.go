package services

import (
	"strings"
	"testing"
	"time"

	"travelmavericks/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingListRows() *sqlmock.Rows {
	cols := []string{
		"id", "reference", "customer_name", "email", "phone", "trip_id",
		"trip_snapshot", "travelers", "travel_date", "accommodation",
		"notes", "status", "payment_method", "total_amount", "booked_at",
	}
	return sqlmock.NewRows(cols).
		AddRow(1, "TM-AAAA0001", "Thandi M", "thandi@example.com", "0800", "zanzibar",
			`{"id":"zanzibar","name":"Zanzibar Island Escape"}`, 2, "2026-09-10", "deluxe",
			"", "confirmed", "card", int64(24400), time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
}

func TestExportCSV(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WillReturnRows(bookingListRows())

	svc := ExportService{BookingRepo: repositories.BookingRepository{DB: db}}
	data, filename, err := svc.CSV()
	if err != nil {
		t.Fatalf("CSV export error: %v", err)
	}
	if filename != "travel_bookings.csv" {
		t.Fatalf("filename = %s", filename)
	}

	body := string(data)
	if !strings.HasPrefix(body, "Reference,Customer,Email,Trip,Date,Travelers,Amount,Status") {
		t.Fatalf("unexpected header: %q", strings.SplitN(body, "\n", 2)[0])
	}
	if !strings.Contains(body, "TM-AAAA0001,Thandi M,thandi@example.com,Zanzibar Island Escape,2026-09-10,2,24400,confirmed") {
		t.Fatalf("row missing from export:\n%s", body)
	}
}

func TestExportXLSX(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WillReturnRows(bookingListRows())

	svc := ExportService{BookingRepo: repositories.BookingRepository{DB: db}}
	data, filename, err := svc.XLSX()
	if err != nil {
		t.Fatalf("XLSX export error: %v", err)
	}
	if filename != "travel_bookings.xlsx" {
		t.Fatalf("filename = %s", filename)
	}
	if len(data) == 0 {
		t.Fatalf("empty xlsx payload")
	}
}
