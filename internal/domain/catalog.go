package domain

import (
	"time"

	"github.com/google/uuid"
)

// Barbershop represents a barbershop owned by a user
type Barbershop struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the barbershop belongs to the given user
func (b *Barbershop) IsOwnedBy(userID uuid.UUID) bool {
	return b.OwnerID == userID
}

// Service represents a bookable service of a barbershop.
// DurationMinutes defines the length of every slot generated for this service.
type Service struct {
	ID              uuid.UUID
	BarbershopID    uuid.UUID
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Employee represents a barber working at a barbershop
type Employee struct {
	ID           uuid.UUID
	BarbershopID uuid.UUID
	Name         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
