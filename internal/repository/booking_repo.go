package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB

	// now is replaceable in tests to pin the allocator month.
	now func() time.Time
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db, now: time.Now}
}

// BookingFilters narrows admin booking listings. Zero values mean "no filter".
type BookingFilters struct {
	Status      string
	ServiceType string
	StartDate   *time.Time
	EndDate     *time.Time
	CustomerID  int64
}

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:            m.ID,
		BookingNumber: m.BookingNumber,
		CustomerID:    m.CustomerID,
		ServiceType:   domain.ServiceType(m.ServiceType),
		ServiceID:     m.ServiceID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		EventDate:     m.EventDate,
		Guests:        m.Guests,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		CustomerID:    b.CustomerID,
		ServiceType:   string(b.ServiceType),
		ServiceID:     b.ServiceID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		EventDate:     b.EventDate,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Create inserts the booking and assigns its booking number. The per-month
// counter increment and the insert share one transaction, so concurrent
// creates cannot observe the same sequence value. The unique index on
// booking_number stays as a backstop and surfaces as ErrDuplicate.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := r.now()

		var seq int64
		res := tx.Raw(`
INSERT INTO booking_sequences (month, counter) VALUES (?, 1)
ON CONFLICT (month) DO UPDATE SET counter = booking_sequences.counter + 1
RETURNING counter
`, domain.SequenceMonth(now)).Scan(&seq)
		if res.Error != nil {
			return res.Error
		}

		b.BookingNumber = domain.FormatBookingNumber(now, seq)

		m := toBookingModel(b)
		m.CreatedAt = now
		m.UpdatedAt = now
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
	return translate(err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainBooking(m), nil
}

// bookingColumns is an exported alias for bookingModel: gorm skips
// unexported embedded fields when parsing scan destinations, so the
// embedded booking columns must be reachable through an exported name.
type bookingColumns = bookingModel

// bookingDetailsRow extends the booking columns with the joined customer and
// service fields produced by the listing query.
type bookingDetailsRow struct {
	BookingColumns bookingColumns `gorm:"embedded"`
	CustomerName  string `gorm:"column:customer_name"`
	CustomerEmail string `gorm:"column:customer_email"`
	CustomerPhone string `gorm:"column:customer_phone"`
	ServiceName   string `gorm:"column:service_name"`
}

// List returns bookings joined with customer contact data and the resolved
// service name, newest first.
func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.BookingDetails, error) {
	q := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
			customers.name AS customer_name,
			customers.email AS customer_email,
			customers.phone AS customer_phone,
			CASE bookings.service_type
				WHEN 'event' THEN (SELECT e.title FROM events e WHERE e.id = bookings.service_id)
				WHEN 'car' THEN (SELECT c.name FROM cars c WHERE c.id = bookings.service_id)
				WHEN 'tour' THEN (SELECT t.name FROM tours t WHERE t.id = bookings.service_id)
			END AS service_name`).
		Joins("LEFT JOIN customers ON customers.id = bookings.customer_id")

	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.ServiceType != "" {
		q = q.Where("bookings.service_type = ?", f.ServiceType)
	}
	if f.StartDate != nil {
		q = q.Where("bookings.created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("bookings.created_at < ?", *f.EndDate)
	}
	if f.CustomerID > 0 {
		q = q.Where("bookings.customer_id = ?", f.CustomerID)
	}

	var rows []bookingDetailsRow
	if err := q.Order("bookings.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.BookingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BookingDetails{
			Booking:       *toDomainBooking(row.BookingColumns),
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerPhone: row.CustomerPhone,
			ServiceName:   row.ServiceName,
		})
	}
	return out, nil
}

// Update replaces every mutable field. BookingNumber and CreatedAt are
// deliberately excluded: the number is immutable after creation.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"customer_id":    m.CustomerID,
			"service_type":   m.ServiceType,
			"service_id":     m.ServiceID,
			"start_date":     m.StartDate,
			"end_date":       m.EndDate,
			"event_date":     m.EventDate,
			"guests":         m.Guests,
			"total_price":    m.TotalPrice,
			"status":         m.Status,
			"payment_status": m.PaymentStatus,
			"notes":          m.Notes,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.setField(ctx, id, "status", string(status))
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.setField(ctx, id, "payment_status", string(status))
}

func (r *BookingRepository) setField(ctx context.Context, id int64, column, value string) error {
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{column: value, "updated_at": time.Now()})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("customer_id = ?", customerID).
		Count(&cnt).Error
	return cnt, translate(err)
}

type summaryRow struct {
	Total          int64
	Pending        int64
	Confirmed      int64
	Completed      int64
	Cancelled      int64
	Revenue        float64
	PendingRevenue float64
}

// Summary computes the status counts and revenue totals in a single scan of
// the bookings table.
func (r *BookingRepository) Summary(ctx context.Context) (*domain.BookingSummary, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
	COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed,
	COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
	COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled,
	COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total_price ELSE 0 END), 0) AS revenue,
	COALESCE(SUM(CASE WHEN status = 'pending' THEN total_price ELSE 0 END), 0) AS pending_revenue
FROM bookings
`).Scan(&row).Error
	if err != nil {
		return nil, translate(err)
	}

	return &domain.BookingSummary{
		Total:          row.Total,
		Pending:        row.Pending,
		Confirmed:      row.Confirmed,
		Completed:      row.Completed,
		Cancelled:      row.Cancelled,
		Revenue:        row.Revenue,
		PendingRevenue: row.PendingRevenue,
	}, nil
}

// RevenueBetween sums paid revenue for bookings created in [from, to).
func (r *BookingRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
SELECT COALESCE(SUM(total_price), 0)
FROM bookings
WHERE payment_status = 'paid' AND created_at >= ? AND created_at < ?
`, from, to).Scan(&total).Error
	return total, translate(err)
}

// ListConfirmedEndedBefore returns confirmed bookings whose relevant date
// (end date, else event date, else start date) is before the cutoff. Consumed
// by the auto-completion job.
func (r *BookingRepository) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("COALESCE(end_date, event_date, start_date) < ?", cutoff).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// Recent returns the newest bookings for the dashboard.
func (r *BookingRepository) Recent(ctx context.Context, limit int) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
