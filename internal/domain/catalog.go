package domain

import "time"

// Service represents a bookable barbershop service.
// Immutable reference data: price and duration are fixed per catalog entry.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Barber represents a barber available for appointments
type Barber struct {
	ID        int64
	FullName  string
	SiteID    int64 // основная точка работы барбера
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Site represents a barbershop location
type Site struct {
	ID        int64
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
