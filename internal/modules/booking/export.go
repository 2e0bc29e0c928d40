package booking

import (
	"context"
	"fmt"
	"time"

	"eventagency/internal/repository"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Booking #", "Customer", "Email", "Phone", "Service", "Type",
	"Start", "End", "Event date", "Guests", "Total", "Status", "Payment", "Created",
}

// ExportXLSX renders the filtered booking list as a spreadsheet for the
// admin dashboard download button.
func (s *Service) ExportXLSX(ctx context.Context, f repository.BookingFilters) (*excelize.File, error) {
	rows, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	index, err := file.NewSheet(exportSheet)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(exportSheet, cell, h)
	}

	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = file.SetCellStyle(exportSheet, first, last, headerStyle)

	for i, b := range rows {
		values := []any{
			b.BookingNumber,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.ServiceName,
			string(b.ServiceType),
			formatDate(b.StartDate),
			formatDate(b.EndDate),
			formatDate(b.EventDate),
			b.Guests,
			b.TotalPrice,
			string(b.Status),
			string(b.PaymentStatus),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = file.SetCellValue(exportSheet, cell, v)
		}
	}

	_ = file.SetColWidth(exportSheet, "A", "A", 16)
	_ = file.SetColWidth(exportSheet, "B", "F", 22)

	return file, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ExportFileName names the download after the current day.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("bookings_%s.xlsx", now.Format("2006-01-02"))
}
