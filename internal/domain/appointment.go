package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a client appointment with an employee of a barbershop
type Appointment struct {
	ID           uuid.UUID
	BarbershopID uuid.UUID
	EmployeeID   uuid.UUID
	ServiceID    uuid.UUID

	ClientName    string
	ClientContact string

	Date            time.Time // день записи, без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesTime returns true if the appointment blocks its time range.
// Cancelled appointments free their slot for new bookings.
func (a *Appointment) OccupiesTime() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo returns true if the status can be changed to the target one
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if !target.IsValid() {
		return false
	}
	// Завершенные и отмененные записи финальны
	return a.Status == StatusPending
}

// AppointmentsFilter фильтр для получения записей барбершопа
type AppointmentsFilter struct {
	BarbershopID uuid.UUID  // Обязательный параметр
	Date         *time.Time // Фильтр по дню (опционально)
	Page         int        // Номер страницы, начиная с 1
	Limit        int        // Размер страницы
}
