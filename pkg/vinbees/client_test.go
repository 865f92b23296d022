package vinbees

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:    srv.URL,
		InitData:   "test-init-data",
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
}

func TestClient_GetColleagues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/colleagues", r.URL.Path)
		assert.Equal(t, "tma test-init-data", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Colleague{
			{ID: 100, Name: "Queen Bee", Role: "CEO"},
		})
	})

	got, err := client.GetColleagues(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Nil(t, got[0].ManagerID)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode([]Colleague{})
	})

	_, err := client.GetColleagues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestClient_UnauthorizedIsTerminal(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetProfile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, attempts)
}

func TestClient_ExhaustedRetries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetColleagues(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ApproveReports(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timesheet/approve", r.URL.Path)
		var payload struct {
			Reports []ReportRef `json:"reports"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_ = json.NewEncoder(w).Encode(ApprovalResult{Success: true, Approved: len(payload.Reports)})
	})

	res, err := client.ApproveReports(context.Background(), []ReportRef{
		{EmployeeID: 103, Date: "2024-03-01"},
		{EmployeeID: 103, Date: "2024-03-04"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Approved)
}

func TestTimesheet_UnmarshalWrappedShape(t *testing.T) {
	raw := `{
		"monthlyNorm": 168,
		"calendar": {"2024-03-08": {"dayType": "holiday", "name": "Holiday"}},
		"reports": {"2024-03-01": {"type": "Work", "regularHours": 8, "overtimeHours": 1, "status": "pending"}}
	}`
	var ts Timesheet
	require.NoError(t, json.Unmarshal([]byte(raw), &ts))
	require.NotNil(t, ts.MonthlyNorm)
	assert.InDelta(t, 168.0, *ts.MonthlyNorm, 0.001)
	assert.Equal(t, "holiday", ts.Calendar["2024-03-08"].DayType)
	assert.InDelta(t, 8.0, ts.Reports["2024-03-01"].RegularHours, 0.001)
}

func TestTimesheet_UnmarshalLegacyShape(t *testing.T) {
	raw := `{"2024-03-01": {"type": "Work", "regularHours": 8, "overtimeHours": 0}}`
	var ts Timesheet
	require.NoError(t, json.Unmarshal([]byte(raw), &ts))
	assert.Nil(t, ts.MonthlyNorm)
	assert.Empty(t, ts.Calendar)
	assert.InDelta(t, 8.0, ts.Reports["2024-03-01"].RegularHours, 0.001)
}

func TestClient_GetTimesheetQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-03", r.URL.Query().Get("month"))
		_, _ = w.Write([]byte(`{"reports": {}}`))
	})

	ts, err := client.GetTimesheet(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.NotNil(t, ts.Reports)
}
