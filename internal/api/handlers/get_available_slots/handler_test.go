package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/barberbook/BarberBook-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/availability/{barbershopId}/slots", NewHandler(uc, noopLogger{}).Handle).
		Methods(http.MethodGet)
	return r
}

func slotsURL(barbershopID uuid.UUID, employeeID, serviceID, date string) string {
	return fmt.Sprintf("/api/v1/availability/%s/slots?employeeId=%s&serviceId=%s&date=%s",
		barbershopID, employeeID, serviceID, date)
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			AvailableSlots: []types.TimeString{"09:00", "10:30", "11:00"},
		},
	}
	router := newRouter(uc)

	employeeID := uuid.New()
	serviceID := uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		slotsURL(uuid.New(), employeeID.String(), serviceID.String(), "2026-09-02"), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00", "10:30", "11:00"}, resp.AvailableSlots)

	require.NotNil(t, uc.got)
	assert.Equal(t, employeeID, uc.got.EmployeeID)
	assert.Equal(t, serviceID, uc.got.ServiceID)
	assert.Equal(t, "2026-09-02", uc.got.Date.Format("2006-01-02"))
}

func TestHandle_EmptySlotsSerializedAsEmptyArray(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{AvailableSlots: []types.TimeString{}},
	}
	router := newRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		slotsURL(uuid.New(), uuid.New().String(), uuid.New().String(), "2026-09-02"), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"availableSlots": []}`, rec.Body.String())
}

func TestHandle_NotFoundMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "service", err: getAvailableSlots.ErrServiceNotFound},
		{name: "employee", err: getAvailableSlots.ErrEmployeeNotFound},
		{name: "schedule", err: getAvailableSlots.ErrScheduleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubUseCase{err: tt.err})

			req := httptest.NewRequest(http.MethodGet,
				slotsURL(uuid.New(), uuid.New().String(), uuid.New().String(), "2026-09-02"), nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	barbershopID := uuid.New()

	tests := []struct {
		name string
		url  string
	}{
		{
			name: "invalid barbershop id",
			url:  fmt.Sprintf("/api/v1/availability/not-a-uuid/slots?employeeId=%s&serviceId=%s&date=2026-09-02", uuid.New(), uuid.New()),
		},
		{
			name: "missing employee id",
			url:  fmt.Sprintf("/api/v1/availability/%s/slots?serviceId=%s&date=2026-09-02", barbershopID, uuid.New()),
		},
		{
			name: "missing service id",
			url:  fmt.Sprintf("/api/v1/availability/%s/slots?employeeId=%s&date=2026-09-02", barbershopID, uuid.New()),
		},
		{
			name: "missing date",
			url:  fmt.Sprintf("/api/v1/availability/%s/slots?employeeId=%s&serviceId=%s", barbershopID, uuid.New(), uuid.New()),
		},
		{
			name: "malformed date",
			url:  slotsURL(barbershopID, uuid.New().String(), uuid.New().String(), "02.09.2026"),
		},
		{
			name: "malformed employee id",
			url:  slotsURL(barbershopID, "not-a-uuid", uuid.New().String(), "2026-09-02"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubUseCase{})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	router := newRouter(&stubUseCase{err: getAvailableSlots.ErrInternal})

	req := httptest.NewRequest(http.MethodGet,
		slotsURL(uuid.New(), uuid.New().String(), uuid.New().String(), "2026-09-02"), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
