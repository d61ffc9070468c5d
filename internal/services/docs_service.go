package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/pricing"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking confirmation and invoice PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(reference string) (models.Booking, error)
}

func (s DocsService) load(reference string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(reference)
	}
	return s.BookingRepo.GetByReference(reference)
}

func (s DocsService) GenerateETicket(reference string) ([]byte, string, error) {
	b, err := s.load(reference)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "reference="+b.Reference)
	return buildETicketPDF(b)
}

func (s DocsService) GenerateInvoice(reference string) ([]byte, string, error) {
	b, err := s.load(reference)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "reference="+b.Reference)
	return buildInvoicePDF(b)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", b.Reference),
		fmt.Sprintf("Customer       : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		fmt.Sprintf("Trip           : %s", safe(b.Trip.Name, "-")),
		fmt.Sprintf("Location       : %s", safe(b.Trip.Location, "-")),
		fmt.Sprintf("Duration       : %s", safe(b.Trip.Duration, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(b.TravelDate, "-")),
		fmt.Sprintf("Travelers      : %d", b.Travelers),
		fmt.Sprintf("Accommodation  : %s", titleCase(b.Accommodation)),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Total          : %s", utils.FormatRand(b.TotalAmount)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation with a valid ID at departure. Total shown is the amount charged at booking time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("eticket-%s.pdf", b.Reference), nil
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice for booking %s", b.Reference))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Billed to: %s <%s>", safe(b.CustomerName, "-"), safe(b.Email, "-")))
	pdf.Ln(12)

	// Breakdown is reconstructed from the snapshot; the stored total stays
	// authoritative, the discount line is whatever bridges the difference.
	travelers := int64(b.Travelers)
	baseTotal := b.Trip.BasePrice * travelers
	upgradeTotal := pricing.Surcharge(b.Accommodation) * travelers
	subtotal := baseTotal + upgradeTotal
	discount := subtotal - b.TotalAmount
	if discount < 0 {
		discount = 0
	}

	rows := [][2]string{
		{fmt.Sprintf("%s x %d traveler(s)", safe(b.Trip.Name, "Trip"), b.Travelers), utils.FormatRand(baseTotal)},
		{fmt.Sprintf("Accommodation upgrade (%s)", b.Accommodation), utils.FormatRand(upgradeTotal)},
		{"Subtotal", utils.FormatRand(subtotal)},
	}
	if discount > 0 {
		rows = append(rows, [2]string{"Returning customer discount (15%)", "-" + utils.FormatRand(discount)})
	}
	rows = append(rows, [2]string{"Total charged", utils.FormatRand(b.TotalAmount)})

	for _, row := range rows {
		pdf.CellFormat(120, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Payment method: %s (simulated). Booked at %s.", safe(b.PaymentMethod, "-"), utils.FormatDateTime(b.BookedAt)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("invoice-%s.pdf", b.Reference), nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
