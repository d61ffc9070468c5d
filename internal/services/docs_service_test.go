package services

import (
	"testing"
	"time"

	"travelmavericks/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(reference string) (models.Booking, error) {
		return models.Booking{
			Reference:    reference,
			CustomerName: "Tester",
			Email:        "tester@example.com",
			Trip: models.Trip{
				ID:        "zanzibar",
				Name:      "Zanzibar Island Escape",
				Location:  "Tanzania",
				Duration:  "6 Days",
				BasePrice: 10200,
			},
			Travelers:     2,
			TravelDate:    "2026-09-10",
			Accommodation: models.AccommodationDeluxe,
			Status:        models.BookingConfirmed,
			PaymentMethod: "card",
			TotalAmount:   20740,
			BookedAt:      time.Now(),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket("TM-TEST0001")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}

	invoice, invName, err := svc.GenerateInvoice("TM-TEST0001")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}
