package domain

import "time"

// Event is a one-off or recurring event offering shown on the public site.
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Location    string     `json:"location,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Price       float64    `json:"price"`
	Capacity    int        `json:"capacity"`
	ImageURL    string     `json:"image_url,omitempty"`
	Featured    bool       `json:"featured"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Car is a rental car offering. Features is stored JSON-encoded in a text
// column; the repository owns the encode/decode.
type Car struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand,omitempty"`
	Category     string    `json:"category,omitempty"`
	Seats        int       `json:"seats"`
	PricePerDay  float64   `json:"price_per_day"`
	Transmission string    `json:"transmission,omitempty"`
	FuelType     string    `json:"fuel_type,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Features     []string  `json:"features"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Tour is a tourism destination package. Activities follows the same JSON
// text-column contract as Car.Features.
type Tour struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Region       string    `json:"region,omitempty"`
	Description  string    `json:"description,omitempty"`
	DurationDays int       `json:"duration_days"`
	Price        float64   `json:"price"`
	MaxGroupSize int       `json:"max_group_size"`
	ImageURL     string    `json:"image_url,omitempty"`
	Activities   []string  `json:"activities"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
