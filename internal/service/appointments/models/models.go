package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// ListRequest запрос на получение записей барбершопа
type ListRequest struct {
	UserID       uuid.UUID  // ID владельца (из X-User-ID)
	BarbershopID uuid.UUID  // ID барбершопа
	Date         *time.Time // Фильтр по дню (опционально)
	Page         int        // Номер страницы, начиная с 1
}

// ListResult страница записей с общим количеством
type ListResult struct {
	Appointments []*domain.Appointment
	Total        int64
	Page         int
	Limit        int
}
