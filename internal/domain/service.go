package domain

import "time"

// Service represents a bookable offering (visit, tour, event)
// Owned by the admin catalog; read-only input to the booking flow
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if the service can currently be booked
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
