package domain

import "time"

// Partner is a company shown in the partners section of the site.
type Partner struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Staff is a team member shown on the about page. DisplayOrder controls
// listing order, lowest first.
type Staff struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
