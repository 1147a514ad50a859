package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/barberbook/BarberBook-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidEmployeeID   = "некорректный ID сотрудника"
	msgInvalidServiceID    = "некорректный ID услуги"
	msgMissingEmployeeID   = "ID сотрудника обязателен"
	msgMissingServiceID    = "ID услуги обязателен"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound     = "услуга не найдена"
	msgEmployeeNotFound    = "сотрудник не найден"
	msgScheduleNotFound    = "расписание не найдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{barbershopId}/slots
// Query params: employeeId (required), serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем barbershopId из URL
	barbershopID, err := uuid.Parse(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	// Извлекаем employeeId из query параметров
	employeeIDStr := r.URL.Query().Get("employeeId")
	if employeeIDStr == "" {
		h.logger.Warn("GET /availability/{id}/slots - Missing employee ID")
		handlers.RespondBadRequest(w, msgMissingEmployeeID)
		return
	}
	employeeID, err := uuid.Parse(employeeIDStr)
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /availability/{id}/slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(barbershopID, employeeID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability/{id}/slots - Service not found: barbershop_id=%s, service_id=%s",
				barbershopID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /availability/{id}/slots - Employee not found: barbershop_id=%s, employee_id=%s",
				barbershopID, employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getAvailableSlots.ErrScheduleNotFound):
			h.logger.Warn("GET /availability/{id}/slots - Schedule not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/{id}/slots - Failed to get slots: barbershop_id=%s, employee_id=%s, service_id=%s, error=%v",
				barbershopID, employeeID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{id}/slots - Slots retrieved successfully: barbershop_id=%s, employee_id=%s, service_id=%s, slots_count=%d",
		barbershopID, employeeID, serviceID, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
