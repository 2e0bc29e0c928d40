package booking

import "time"

type CreateBookingRequest struct {
	CustomerID    int64      `json:"customer_id" binding:"required"`
	ServiceType   string     `json:"service_type" binding:"required,oneof=event car tour"`
	ServiceID     int64      `json:"service_id" binding:"required"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	EventDate     *time.Time `json:"event_date"`
	Guests        int        `json:"guests" binding:"omitempty,gte=1"`
	TotalPrice    float64    `json:"total_price" binding:"omitempty,gte=0"`
	Status        string     `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string     `json:"payment_status" binding:"omitempty,oneof=unpaid paid refunded"`
	Notes         string     `json:"notes"`
}

type UpdateBookingRequest struct {
	CustomerID    int64      `json:"customer_id" binding:"required"`
	ServiceType   string     `json:"service_type" binding:"required,oneof=event car tour"`
	ServiceID     int64      `json:"service_id" binding:"required"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	EventDate     *time.Time `json:"event_date"`
	Guests        int        `json:"guests" binding:"omitempty,gte=1"`
	TotalPrice    float64    `json:"total_price" binding:"omitempty,gte=0"`
	Status        string     `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
	PaymentStatus string     `json:"payment_status" binding:"required,oneof=unpaid paid refunded"`
	Notes         string     `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=unpaid paid refunded"`
}
