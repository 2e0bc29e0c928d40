package booking

import (
	"context"
	"testing"
	"time"

	"eventagency/internal/domain"
	"eventagency/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportXLSX(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	rows := []domain.BookingDetails{
		{
			Booking: domain.Booking{
				ID:            1,
				BookingNumber: "BK-2608-0001",
				ServiceType:   domain.ServiceEvent,
				Guests:        2,
				TotalPrice:    15000,
				Status:        domain.BookingConfirmed,
				PaymentStatus: domain.PaymentPaid,
				CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			},
			CustomerName: "Aigerim Seit",
			ServiceName:  "City Jazz Night",
		},
	}
	mockBookings.On("List", mock.Anything, repository.BookingFilters{}).Return(rows, nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	file, err := service.ExportXLSX(context.Background(), repository.BookingFilters{})
	require.NoError(t, err)
	defer file.Close()

	header, err := file.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking #", header)

	number, err := file.GetCellValue(exportSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "BK-2608-0001", number)

	name, err := file.GetCellValue(exportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Aigerim Seit", name)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "bookings_2026-08-28.xlsx", ExportFileName(now))
}
