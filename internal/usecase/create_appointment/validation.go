package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.BarbershopID == uuid.Nil {
		return fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}

	if req.EmployeeID == uuid.Nil {
		return fmt.Errorf("%w: employeeID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if len(req.ClientName) < domain.MinClientNameLength {
		return fmt.Errorf("%w: clientName must be at least %d characters", ErrInvalidInput, domain.MinClientNameLength)
	}

	if len(req.ClientContact) < domain.MinClientContactLength {
		return fmt.Errorf("%w: clientContact must be at least %d characters", ErrInvalidInput, domain.MinClientContactLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlot проверяет, что запрошенное время - существующий свободный слот:
// выровнено по шагу генерации от времени открытия, услуга целиком помещается
// в рабочее окно и интервал не пересекает ни перерывы, ни активные записи.
// Правило пересечения то же, что и в генераторе слотов: полуоткрытые интервалы,
// граничащие интервалы пересечением не считаются.
func validateSlot(
	schedule *domain.Schedule,
	startMinutes int,
	durationMinutes int,
	appointments []*domain.Appointment,
) error {
	openMinutes, err := schedule.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}
	closeMinutes, err := schedule.CloseTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	endMinutes := startMinutes + durationMinutes

	if startMinutes < openMinutes || endMinutes > closeMinutes {
		return ErrSlotNotAvailable
	}

	// Слоты существуют только на границах шага от времени открытия
	if (startMinutes-openMinutes)%domain.SlotStepMinutes != 0 {
		return ErrSlotNotAvailable
	}

	for _, brk := range schedule.Breaks {
		breakStart, err := brk.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid break start time: %v", ErrInternal, err)
		}
		breakEnd, err := brk.EndTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid break end time: %v", ErrInternal, err)
		}
		if startMinutes < breakEnd && endMinutes > breakStart {
			return ErrSlotNotAvailable
		}
	}

	for _, appt := range appointments {
		if !appt.OccupiesTime() {
			continue
		}
		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			// Запись с некорректным временем не может блокировать слот
			continue
		}
		apptEnd := apptStart + appt.DurationMinutes
		if startMinutes < apptEnd && endMinutes > apptStart {
			return ErrSlotNotAvailable
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
