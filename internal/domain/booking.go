package domain

import (
	"fmt"
	"time"
)

// SequenceMonth is the YYMM bucket a booking number's counter is scoped to.
func SequenceMonth(t time.Time) string { return t.Format("0601") }

// FormatBookingNumber renders BK-YYMM-NNNN for a creation time and a
// month-scoped sequence value (first booking of a month gets 1).
func FormatBookingNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("BK-%s-%04d", SequenceMonth(t), seq)
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type ServiceType string

const (
	ServiceEvent ServiceType = "event"
	ServiceCar   ServiceType = "car"
	ServiceTour  ServiceType = "tour"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceEvent, ServiceCar, ServiceTour:
		return true
	}
	return false
}

// Booking links a customer to a bookable service (event, car or tour).
// BookingNumber is assigned once at creation and never changes.
type Booking struct {
	ID            int64         `json:"id"`
	BookingNumber string        `json:"booking_number"`
	CustomerID    int64         `json:"customer_id"`
	ServiceType   ServiceType   `json:"service_type"`
	ServiceID     int64         `json:"service_id"`
	StartDate     *time.Time    `json:"start_date,omitempty"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	EventDate     *time.Time    `json:"event_date,omitempty"`
	Guests        int           `json:"guests"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BookingDetails is a booking joined with customer contact data and the
// resolved service name, as returned by admin booking listings.
type BookingDetails struct {
	Booking
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceName   string `json:"service_name"`
}

// BookingSummary holds the aggregates behind the stats endpoint.
type BookingSummary struct {
	Total            int64   `json:"total"`
	Pending          int64   `json:"pending"`
	Confirmed        int64   `json:"confirmed"`
	Completed        int64   `json:"completed"`
	Cancelled        int64   `json:"cancelled"`
	Revenue          float64 `json:"revenue"`
	PendingRevenue   float64 `json:"pending_revenue"`
	MonthRevenue     float64 `json:"month_revenue"`
	LastMonthRevenue float64 `json:"last_month_revenue"`
	GrowthPercent    float64 `json:"growth_percent"`
}
