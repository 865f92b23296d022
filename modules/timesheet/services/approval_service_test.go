package services_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/modules/timesheet/domain/approval"
	"github.com/vinbees/hive-sdk/modules/timesheet/services"
	"github.com/vinbees/hive-sdk/pkg/logging"
)

type stubApprovalRepo struct {
	employees  []approval.Employee
	loadErr    error
	commitErr  error
	loads      int
	lastAction string
	lastRefs   []approval.Ref
}

func (r *stubApprovalRepo) GetSubordinates(_ context.Context, _ string) ([]approval.Employee, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	r.loads++
	out := make([]approval.Employee, len(r.employees))
	for i, e := range r.employees {
		out[i] = e
		out[i].Reports = append([]dailyreport.DailyReport(nil), e.Reports...)
	}
	return out, nil
}

func (r *stubApprovalRepo) Approve(_ context.Context, refs []approval.Ref) (int, error) {
	r.lastAction, r.lastRefs = "approve", refs
	if r.commitErr != nil {
		return 0, r.commitErr
	}
	return len(refs), nil
}

func (r *stubApprovalRepo) Reject(_ context.Context, refs []approval.Ref, _ string) (int, error) {
	r.lastAction, r.lastRefs = "reject", refs
	if r.commitErr != nil {
		return 0, r.commitErr
	}
	return len(refs), nil
}

func seedApprovalRepo() *stubApprovalRepo {
	return &stubApprovalRepo{employees: []approval.Employee{
		{
			ID: 103, Name: "Worker Bee", Role: "Forager",
			Reports: []dailyreport.DailyReport{
				dailyreport.Hydrate("2024-03-04", dailyreport.TypeWork, 8, 0, dailyreport.StatusPending),
				dailyreport.Hydrate("2024-03-05", dailyreport.TypeWork, 8, 1, dailyreport.StatusPending),
				dailyreport.Hydrate("2024-03-06", dailyreport.TypeWork, 8, 0, dailyreport.StatusApproved),
			},
		},
		{
			ID: 104, Name: "Drone Bee", Role: "Hive Support",
			Reports: []dailyreport.DailyReport{
				dailyreport.Hydrate("2024-03-04", dailyreport.TypeWork, 8, 0, dailyreport.StatusPending),
			},
		},
	}}
}

func newApprovalService(t *testing.T, repo *stubApprovalRepo) *services.ApprovalService {
	t.Helper()
	svc := services.NewApprovalService(repo, logging.ConsoleLogger(logrus.ErrorLevel))
	require.NoError(t, svc.LoadMonth(context.Background(), "2024-03"))
	return svc
}

func TestApprovalService_Grouping(t *testing.T) {
	svc := newApprovalService(t, seedApprovalRepo())

	groups, err := svc.ByEmployee(approval.FilterAll)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(103), groups[0].ID)

	weeks, err := svc.ByWeek(string(dailyreport.StatusPending))
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2, weeks[0].Week)
	assert.Len(t, weeks[0].Employees, 2)
}

func TestApprovalService_ToggleEmployeeBatch(t *testing.T) {
	svc := newApprovalService(t, seedApprovalRepo())

	// Only the two pending days go in; the approved one stays out.
	assert.Equal(t, 2, svc.ToggleEmployeeBatch(103))
	assert.Equal(t, 0, svc.ToggleEmployeeBatch(103))
	assert.Equal(t, 0, svc.ToggleEmployeeBatch(999))
}

func TestApprovalService_Approve(t *testing.T) {
	repo := seedApprovalRepo()
	svc := newApprovalService(t, repo)

	svc.Toggle(approval.Ref{EmployeeID: 103, Date: "2024-03-04"})
	svc.Toggle(approval.Ref{EmployeeID: 104, Date: "2024-03-04"})
	// Stale ref to an already approved day gets dropped at commit.
	svc.Toggle(approval.Ref{EmployeeID: 103, Date: "2024-03-06"})

	loadsBefore := repo.loads
	count, err := svc.Approve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "approve", repo.lastAction)
	assert.Len(t, repo.lastRefs, 2)
	assert.Empty(t, svc.Selection(), "selection clears on success")
	assert.Equal(t, loadsBefore+1, repo.loads, "authoritative reload after commit")
}

func TestApprovalService_CommitFailureLeavesStateAlone(t *testing.T) {
	repo := seedApprovalRepo()
	svc := newApprovalService(t, repo)

	svc.Toggle(approval.Ref{EmployeeID: 103, Date: "2024-03-04"})
	svc.Toggle(approval.Ref{EmployeeID: 103, Date: "2024-03-05"})
	svc.Toggle(approval.Ref{EmployeeID: 104, Date: "2024-03-04"})

	repo.commitErr = errors.New("backend down")
	_, err := svc.Reject(context.Background(), "late")
	require.Error(t, err)

	assert.Len(t, svc.Selection(), 3, "selection survives a failed commit")
	weeks, err := svc.ByWeek(string(dailyreport.StatusPending))
	require.NoError(t, err)
	require.Len(t, weeks, 1)
}

func TestApprovalService_EmptySelection(t *testing.T) {
	svc := newApprovalService(t, seedApprovalRepo())
	_, err := svc.Approve(context.Background())
	require.ErrorIs(t, err, services.ErrEmptySelection)
}

func TestApprovalService_LoadMonthClearsSelection(t *testing.T) {
	svc := newApprovalService(t, seedApprovalRepo())
	svc.Toggle(approval.Ref{EmployeeID: 103, Date: "2024-03-04"})
	require.NoError(t, svc.LoadMonth(context.Background(), "2024-04"))
	assert.Empty(t, svc.Selection())
}
