package get_schedule

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
	msgScheduleNotFound    = "расписание не найдено"
	msgBarbershopNotFound  = "барбершоп не найден"
	msgAccessDenied        = "нет прав на просмотр расписания этого барбершопа"
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

// Handle GET /api/v1/barbershops/{barbershopId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
		return
	}

	vars := mux.Vars(r)
	barbershopID, err := uuid.Parse(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/schedule - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	schedule, err := h.service.Get(r.Context(), userID, barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("GET /barbershops/{id}/schedule - Schedule not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, scheduleService.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id}/schedule - Barbershop not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("GET /barbershops/{id}/schedule - Access denied: user_id=%s, barbershop_id=%s",
				userID, barbershopID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /barbershops/{id}/schedule - Failed to get schedule: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/schedule - Schedule returned: barbershop_id=%s", barbershopID)
	handlers.RespondJSON(w, http.StatusOK, FromSchedule(schedule))
}
