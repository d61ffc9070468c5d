package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"travelmavericks/internal/domain"
	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExportService renders the full booking list as CSV or XLSX downloads.
type ExportService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

var exportHeader = []string{"Reference", "Customer", "Email", "Trip", "Date", "Travelers", "Amount", "Status"}

func exportRow(b models.Booking) []string {
	return []string{
		b.Reference,
		b.CustomerName,
		b.Email,
		b.Trip.Name,
		b.TravelDate,
		strconv.Itoa(b.Travelers),
		strconv.FormatInt(b.TotalAmount, 10),
		b.Status,
	}
}

func (s ExportService) CSV() ([]byte, string, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	for _, b := range bookings {
		if err := w.Write(exportRow(b)); err != nil {
			return nil, "", domain.InternalError{Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "export", "csv", "rows="+strconv.Itoa(len(bookings)))
	return buf.Bytes(), "travel_bookings.csv", nil
}

func (s ExportService) XLSX() ([]byte, string, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Bookings"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	for i, b := range bookings {
		row := exportRow(b)
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, "", domain.InternalError{Err: err}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "export", "xlsx", "rows="+strconv.Itoa(len(bookings)))
	return buf.Bytes(), "travel_bookings.xlsx", nil
}
