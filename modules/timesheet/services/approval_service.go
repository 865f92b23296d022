package services

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/modules/timesheet/domain/approval"
	"github.com/vinbees/hive-sdk/pkg/serrors"
)

var (
	ErrApprovalBusy   = serrors.NewError("APPROVAL_BUSY", "another bulk action is still running", "wait for it to finish")
	ErrEmptySelection = serrors.NewError("APPROVAL_EMPTY_SELECTION", "no reports selected", "pick at least one pending report")
	ErrNoSubordinates = serrors.NewError("APPROVAL_NOT_LOADED", "no subordinate data loaded", "call LoadMonth first")
)

var bulkActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vinbees_timesheet_bulk_actions_total",
	Help: "Bulk approval actions by action and outcome.",
}, []string{"action", "outcome"})

// ApprovalService drives the manager's approval flow: one month of
// subordinate reports, a selection of pending days and the two bulk actions.
// A single bulk action runs at a time; while one is in flight further commits
// bounce with ErrApprovalBusy.
type ApprovalService struct {
	repo approval.Repository
	log  *logrus.Logger

	mu           sync.Mutex
	month        string
	employees    []approval.Employee
	selection    approval.Selection
	isProcessing bool
}

func NewApprovalService(repo approval.Repository, log *logrus.Logger) *ApprovalService {
	return &ApprovalService{repo: repo, log: log}
}

// LoadMonth replaces the working set. Switching months drops the selection,
// which would otherwise point into the previous month; re-fetching the same
// month keeps it.
func (s *ApprovalService) LoadMonth(ctx context.Context, month string) error {
	employees, err := s.repo.GetSubordinates(ctx, month)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.month != month {
		s.selection.Clear()
	}
	s.month = month
	s.employees = employees
	s.mu.Unlock()
	return nil
}

func (s *ApprovalService) ByEmployee(statusFilter string) ([]approval.EmployeeGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.month == "" {
		return nil, ErrNoSubordinates
	}
	return approval.GroupByEmployeeThenWeek(s.employees, statusFilter), nil
}

func (s *ApprovalService) ByWeek(statusFilter string) ([]approval.WeekEmployees, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.month == "" {
		return nil, ErrNoSubordinates
	}
	return approval.GroupByWeekThenEmployee(s.employees, statusFilter), nil
}

func (s *ApprovalService) Toggle(ref approval.Ref) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Toggle(ref)
	return s.selection.Len()
}

// ToggleEmployeeBatch flips all of one employee's pending days. Unknown
// employees and employees without pending days are no-ops.
func (s *ApprovalService) ToggleEmployeeBatch(employeeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == employeeID {
			s.selection.ToggleBatch(employeeID, e.PendingDates())
			break
		}
	}
	return s.selection.Len()
}

func (s *ApprovalService) Selection() []approval.Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Refs()
}

// Approve commits the selection. On success the selected pending reports flip
// to approved locally, the selection clears, and the month reloads from the
// backend as the authority. On failure everything stays as it was.
func (s *ApprovalService) Approve(ctx context.Context) (int, error) {
	return s.commit(ctx, "approve", func(refs []approval.Ref) (int, error) {
		return s.repo.Approve(ctx, refs)
	}, dailyreport.StatusApproved)
}

// Reject is Approve's mirror with a reason forwarded to the backend.
func (s *ApprovalService) Reject(ctx context.Context, reason string) (int, error) {
	return s.commit(ctx, "reject", func(refs []approval.Ref) (int, error) {
		return s.repo.Reject(ctx, refs, reason)
	}, dailyreport.StatusRejected)
}

func (s *ApprovalService) commit(ctx context.Context, action string, call func([]approval.Ref) (int, error), target dailyreport.Status) (int, error) {
	s.mu.Lock()
	if s.isProcessing {
		s.mu.Unlock()
		return 0, ErrApprovalBusy
	}
	if s.month == "" {
		s.mu.Unlock()
		return 0, ErrNoSubordinates
	}
	// Re-validate: only refs that still resolve to pending reports go out.
	refs := s.pendingRefsLocked()
	if len(refs) == 0 {
		s.mu.Unlock()
		return 0, ErrEmptySelection
	}
	s.isProcessing = true
	month := s.month
	s.mu.Unlock()

	count, err := call(refs)

	s.mu.Lock()
	s.isProcessing = false
	if err != nil {
		s.mu.Unlock()
		bulkActions.WithLabelValues(action, "failure").Inc()
		s.log.WithError(err).WithField("action", action).Warn("bulk approval action failed")
		return 0, err
	}
	s.applyStatusLocked(refs, target)
	s.selection.Clear()
	s.mu.Unlock()
	bulkActions.WithLabelValues(action, "success").Inc()

	// The backend stays authoritative: reload, but keep the optimistic state
	// when the reload fails.
	if rerr := s.LoadMonth(ctx, month); rerr != nil {
		s.log.WithError(rerr).Warn("post-commit reload failed, keeping optimistic state")
	}
	return count, nil
}

func (s *ApprovalService) pendingRefsLocked() []approval.Ref {
	byID := make(map[int64]*approval.Employee, len(s.employees))
	for i := range s.employees {
		byID[s.employees[i].ID] = &s.employees[i]
	}
	refs := make([]approval.Ref, 0, s.selection.Len())
	for _, ref := range s.selection.Refs() {
		e, ok := byID[ref.EmployeeID]
		if !ok {
			continue
		}
		for _, r := range e.Reports {
			if r.Date() == ref.Date && r.IsPending() {
				refs = append(refs, ref)
				break
			}
		}
	}
	return refs
}

func (s *ApprovalService) applyStatusLocked(refs []approval.Ref, target dailyreport.Status) {
	for _, ref := range refs {
		for i := range s.employees {
			if s.employees[i].ID != ref.EmployeeID {
				continue
			}
			reports := s.employees[i].Reports
			for j := range reports {
				if reports[j].Date() == ref.Date && reports[j].IsPending() {
					reports[j] = reports[j].WithStatus(target)
				}
			}
		}
	}
}
