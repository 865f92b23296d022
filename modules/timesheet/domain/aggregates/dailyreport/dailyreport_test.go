package dailyreport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		dayType  dailyreport.DayType
		regular  float64
		overtime float64
		wantErr  error
	}{
		{"valid work day", "2024-03-04", dailyreport.TypeWork, 8, 2, nil},
		{"exactly 24 hours", "2024-03-04", dailyreport.TypeWork, 20, 4, nil},
		{"over 24 hours", "2024-03-04", dailyreport.TypeWork, 20, 5, dailyreport.ErrTooManyHours},
		{"negative regular", "2024-03-04", dailyreport.TypeWork, -1, 0, dailyreport.ErrNegativeHours},
		{"negative overtime", "2024-03-04", dailyreport.TypeWork, 8, -1, dailyreport.ErrNegativeHours},
		{"zero hour work day", "2024-03-04", dailyreport.TypeWork, 0, 0, dailyreport.ErrEmptyWorkDay},
		{"zero hour vacation is fine", "2024-03-04", dailyreport.TypeVacation, 0, 0, nil},
		{"unknown day type", "2024-03-04", dailyreport.DayType("Nap"), 8, 0, dailyreport.ErrUnknownDayType},
		{"malformed date", "04.03.2024", dailyreport.TypeWork, 8, 0, dailyreport.ErrBadDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := dailyreport.New(tt.date, tt.dayType, tt.regular, tt.overtime)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dailyreport.StatusDraft, r.Status())
		})
	}
}

func TestNew_NormalizesNonWorkDays(t *testing.T) {
	r, err := dailyreport.New("2024-03-04", dailyreport.TypeVacation, 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, r.RegularHours(), 0.001)
	assert.Zero(t, r.OvertimeHours())
}

func TestNew_WorkDayKeepsHours(t *testing.T) {
	r, err := dailyreport.New("2024-03-04", dailyreport.TypeWork, 7.5, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, r.RegularHours(), 0.001)
	assert.InDelta(t, 1.5, r.OvertimeHours(), 0.001)
}

func TestWithStatus(t *testing.T) {
	r := dailyreport.Hydrate("2024-03-04", dailyreport.TypeWork, 8, 0, dailyreport.StatusPending)
	assert.True(t, r.IsPending())

	approved := r.WithStatus(dailyreport.StatusApproved)
	assert.Equal(t, dailyreport.StatusApproved, approved.Status())
	assert.True(t, r.IsPending(), "original value is untouched")
}
