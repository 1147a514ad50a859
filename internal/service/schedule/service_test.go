package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/schedule/models"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func validUpsertRequest(t *testing.T) *models.UpsertRequest {
	t.Helper()
	return &models.UpsertRequest{
		UserID:       uuid.New(),
		BarbershopID: uuid.New(),
		DaysOfWeek:   []int{1, 2, 3, 4, 5},
		OpenTime:     mustTime(t, "09:00"),
		CloseTime:    mustTime(t, "18:00"),
		Breaks: []models.BreakInput{
			{StartTime: mustTime(t, "13:00"), EndTime: mustTime(t, "14:00")},
		},
	}
}

func TestValidateUpsertRequest_Valid(t *testing.T) {
	assert.NoError(t, validateUpsertRequest(validUpsertRequest(t)))
}

func TestValidateUpsertRequest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UpsertRequest)
		wantErr error
	}{
		{
			name:    "nil barbershop",
			mutate:  func(r *models.UpsertRequest) { r.BarbershopID = uuid.Nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty days",
			mutate:  func(r *models.UpsertRequest) { r.DaysOfWeek = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "day out of range",
			mutate:  func(r *models.UpsertRequest) { r.DaysOfWeek = []int{1, 7} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate day",
			mutate:  func(r *models.UpsertRequest) { r.DaysOfWeek = []int{1, 1} },
			wantErr: ErrInvalidInput,
		},
		{
			name: "open after close",
			mutate: func(r *models.UpsertRequest) {
				r.OpenTime = mustTime(t, "18:00")
				r.CloseTime = mustTime(t, "09:00")
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "open equals close",
			mutate: func(r *models.UpsertRequest) {
				r.OpenTime = mustTime(t, "09:00")
				r.CloseTime = mustTime(t, "09:00")
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "inverted break",
			mutate: func(r *models.UpsertRequest) {
				r.Breaks = []models.BreakInput{
					{StartTime: mustTime(t, "14:00"), EndTime: mustTime(t, "13:00")},
				}
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "break before opening",
			mutate: func(r *models.UpsertRequest) {
				r.Breaks = []models.BreakInput{
					{StartTime: mustTime(t, "08:00"), EndTime: mustTime(t, "09:30")},
				}
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "break past closing",
			mutate: func(r *models.UpsertRequest) {
				r.Breaks = []models.BreakInput{
					{StartTime: mustTime(t, "17:30"), EndTime: mustTime(t, "18:30")},
				}
			},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsertRequest(t)
			tt.mutate(req)

			assert.ErrorIs(t, validateUpsertRequest(req), tt.wantErr)
		})
	}
}
