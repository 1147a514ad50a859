package get_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/handlers"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/middleware"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	appointmentsService "github.com/barberbook/BarberBook-AvailabilityService/internal/service/appointments"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/appointments/models"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidPage         = "некорректный номер страницы"
	msgBarbershopNotFound  = "барбершоп не найден"
	msgAccessDenied        = "нет прав на просмотр записей этого барбершопа"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/appointments?date=YYYY-MM-DD&page=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
		return
	}

	vars := mux.Vars(r)
	barbershopID, err := uuid.Parse(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/appointments - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	req := &models.ListRequest{
		UserID:       userID,
		BarbershopID: barbershopID,
		Page:         1,
	}

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := time.Parse(domain.DateFormat, dateParam)
		if err != nil {
			h.logger.Warn("GET /barbershops/{id}/appointments - Invalid date: %q", dateParam)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page <= 0 {
			h.logger.Warn("GET /barbershops/{id}/appointments - Invalid page: %q", pageParam)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		req.Page = page
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id}/appointments - Barbershop not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /barbershops/{id}/appointments - Access denied: user_id=%s, barbershop_id=%s",
				userID, barbershopID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/appointments - Failed to list appointments: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/appointments - Returned %d of %d appointments: barbershop_id=%s, page=%d",
		len(result.Appointments), result.Total, barbershopID, result.Page)
	handlers.RespondJSON(w, http.StatusOK, FromListResult(result))
}
