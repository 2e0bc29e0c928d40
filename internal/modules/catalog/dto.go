package catalog

import "time"

type EventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
	Price       float64    `json:"price" binding:"omitempty,gte=0"`
	Capacity    int        `json:"capacity" binding:"omitempty,gte=0"`
	ImageURL    string     `json:"image_url"`
	Featured    bool       `json:"featured"`
	Active      *bool      `json:"active"`
}

type CarRequest struct {
	Name         string   `json:"name" binding:"required"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Seats        int      `json:"seats" binding:"omitempty,gte=1"`
	PricePerDay  float64  `json:"price_per_day" binding:"omitempty,gte=0"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	ImageURL     string   `json:"image_url"`
	Features     []string `json:"features"`
	Available    *bool    `json:"available"`
}

type TourRequest struct {
	Name         string   `json:"name" binding:"required"`
	Region       string   `json:"region"`
	Description  string   `json:"description"`
	DurationDays int      `json:"duration_days" binding:"omitempty,gte=1"`
	Price        float64  `json:"price" binding:"omitempty,gte=0"`
	MaxGroupSize int      `json:"max_group_size" binding:"omitempty,gte=1"`
	ImageURL     string   `json:"image_url"`
	Activities   []string `json:"activities"`
	Active       *bool    `json:"active"`
}
