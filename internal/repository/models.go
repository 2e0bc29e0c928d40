package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Row models live here so domain structs stay free of storage concerns.
// Bookings, cars and tours have explicit mappers (nullable columns, JSON text
// columns); the simpler tables bind their domain struct directly via the
// mappers below.

type eventModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	Category    string     `gorm:"column:category;index"`
	Location    string     `gorm:"column:location"`
	Date        *time.Time `gorm:"column:date"`
	Price       float64    `gorm:"column:price"`
	Capacity    int        `gorm:"column:capacity"`
	ImageURL    string     `gorm:"column:image_url"`
	Featured    bool       `gorm:"column:featured"`
	Active      bool       `gorm:"column:active"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

type carModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Brand        string    `gorm:"column:brand"`
	Category     string    `gorm:"column:category"`
	Seats        int       `gorm:"column:seats"`
	PricePerDay  float64   `gorm:"column:price_per_day"`
	Transmission string    `gorm:"column:transmission"`
	FuelType     string    `gorm:"column:fuel_type"`
	ImageURL     string    `gorm:"column:image_url"`
	Features     string    `gorm:"column:features;type:text"`
	Available    bool      `gorm:"column:available"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (carModel) TableName() string { return "cars" }

type tourModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Region       string    `gorm:"column:region;index"`
	Description  string    `gorm:"column:description"`
	DurationDays int       `gorm:"column:duration_days"`
	Price        float64   `gorm:"column:price"`
	MaxGroupSize int       `gorm:"column:max_group_size"`
	ImageURL     string    `gorm:"column:image_url"`
	Activities   string    `gorm:"column:activities;type:text"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (tourModel) TableName() string { return "tours" }

type partnerModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category"`
	LogoURL     string    `gorm:"column:logo_url"`
	WebsiteURL  string    `gorm:"column:website_url"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (partnerModel) TableName() string { return "partners" }

type staffModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	Bio          string    `gorm:"column:bio"`
	PhotoURL     string    `gorm:"column:photo_url"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	DisplayOrder int       `gorm:"column:display_order"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (staffModel) TableName() string { return "staff" }

type customerModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index"`
	Phone     string    `gorm:"column:phone"`
	Notes     string    `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

type contactMessageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Subject   string    `gorm:"column:subject"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

type adminUserModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminUserModel) TableName() string { return "admin_users" }

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	BookingNumber string     `gorm:"column:booking_number;uniqueIndex"`
	CustomerID    int64      `gorm:"column:customer_id;index"`
	ServiceType   string     `gorm:"column:service_type;index"`
	ServiceID     int64      `gorm:"column:service_id"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
	EventDate     *time.Time `gorm:"column:event_date"`
	Guests        int        `gorm:"column:guests"`
	TotalPrice    float64    `gorm:"column:total_price"`
	Status        string     `gorm:"column:status;index"`
	PaymentStatus string     `gorm:"column:payment_status"`
	Notes         *string    `gorm:"column:notes;type:text"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// bookingSequenceModel backs the per-month booking number allocator.
type bookingSequenceModel struct {
	Month   string `gorm:"column:month;primaryKey;size:4"`
	Counter int64  `gorm:"column:counter"`
}

func (bookingSequenceModel) TableName() string { return "booking_sequences" }

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&eventModel{},
		&carModel{},
		&tourModel{},
		&partnerModel{},
		&staffModel{},
		&customerModel{},
		&contactMessageModel{},
		&adminUserModel{},
		&bookingModel{},
		&bookingSequenceModel{},
	)
}

// translate maps driver-level errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	// modernc/sqlite reports constraint failures by message only
	if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed") && strings.Contains(err.Error(), "unique") {
		return ErrDuplicate
	}
	return err
}
