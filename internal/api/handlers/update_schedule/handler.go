package update_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/handlers"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/middleware"
	scheduleService "github.com/barberbook/BarberBook-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTimeRange    = "некорректный временной диапазон"
	msgBarbershopNotFound  = "барбершоп не найден"
	msgAccessDenied        = "нет прав на изменение расписания этого барбершопа"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbershops/{barbershopId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbershops/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
		return
	}

	vars := mux.Vars(r)
	barbershopID, err := uuid.Parse(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("PUT /barbershops/{id}/schedule - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbershops/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, barbershopID)
	if err != nil {
		h.logger.Warn("PUT /barbershops/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Upsert(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /barbershops/{id}/schedule - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /barbershops/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, scheduleService.ErrBarbershopNotFound):
			h.logger.Warn("PUT /barbershops/{id}/schedule - Barbershop not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /barbershops/{id}/schedule - Access denied: user_id=%s, barbershop_id=%s",
				userID, barbershopID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /barbershops/{id}/schedule - Failed to upsert schedule: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbershops/{id}/schedule - Schedule saved: id=%s, barbershop_id=%s",
		schedule.ID, barbershopID)
	handlers.RespondJSON(w, http.StatusOK, FromSchedule(schedule))
}
