package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/modules/timesheet/domain/approval"
	"github.com/vinbees/hive-sdk/modules/timesheet/presentation/controllers/dtos"
	"github.com/vinbees/hive-sdk/modules/timesheet/presentation/mappers"
	"github.com/vinbees/hive-sdk/modules/timesheet/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
)

type TimesheetAPIController struct {
	app        application.Application
	timesheets *services.TimesheetService
	approvals  *services.ApprovalService
	basePath   string
}

func NewTimesheetAPIController(app application.Application) application.Controller {
	return &TimesheetAPIController{
		app:        app,
		timesheets: app.Service(services.TimesheetService{}).(*services.TimesheetService),
		approvals:  app.Service(services.ApprovalService{}).(*services.ApprovalService),
		basePath:   "/timesheet/api",
	}
}

func (c *TimesheetAPIController) Key() string {
	return c.basePath
}

func (c *TimesheetAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/month", c.Month).Methods(http.MethodGet)
	router.HandleFunc("/day", c.SaveDay).Methods(http.MethodPost)

	router.HandleFunc("/approvals", c.Approvals).Methods(http.MethodGet)
	router.HandleFunc("/approvals/selection", c.Selection).Methods(http.MethodGet)
	router.HandleFunc("/approvals/toggle", c.Toggle).Methods(http.MethodPost)
	router.HandleFunc("/approvals/toggle-employee", c.ToggleEmployee).Methods(http.MethodPost)
	router.HandleFunc("/approvals/approve", c.Approve).Methods(http.MethodPost)
	router.HandleFunc("/approvals/reject", c.Reject).Methods(http.MethodPost)
}

func monthParam(r *http.Request) string {
	if m := strings.TrimSpace(r.URL.Query().Get("month")); m != "" {
		return m
	}
	return time.Now().Format("2006-01")
}

func (c *TimesheetAPIController) Month(w http.ResponseWriter, r *http.Request) {
	view, err := c.timesheets.LoadMonth(r.Context(), monthParam(r))
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.MonthToViewModel(view))
}

func (c *TimesheetAPIController) SaveDay(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SaveReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}

	report, err := c.timesheets.SaveDay(r.Context(), dto.Date, dailyreport.DayType(dto.Type), dto.RegularHours, dto.OvertimeHours)
	if err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			httpapi.WriteError(w, http.StatusUnprocessableEntity, serr.Code, serr.Message, nil)
			return
		}
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.ReportToViewModel(report))
}

// Approvals serves both groupings; groupBy=week inverts the nesting and
// status narrows to one of pending, approved or rejected.
func (c *TimesheetAPIController) Approvals(w http.ResponseWriter, r *http.Request) {
	if err := c.approvals.LoadMonth(r.Context(), monthParam(r)); err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}

	statusFilter := strings.TrimSpace(r.URL.Query().Get("status"))
	if statusFilter == "" {
		statusFilter = approval.FilterAll
	}

	if r.URL.Query().Get("groupBy") == "week" {
		groups, err := c.approvals.ByWeek(statusFilter)
		if err != nil {
			httpapi.WriteUpstreamError(w, err)
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, map[string]any{"groupBy": "week", "weeks": mappers.WeekGroupsToViewModels(groups)})
		return
	}

	groups, err := c.approvals.ByEmployee(statusFilter)
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"groupBy": "employee", "employees": mappers.EmployeeGroupsToViewModels(groups)})
}

func (c *TimesheetAPIController) Selection(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, mappers.SelectionToViewModel(c.approvals.Selection()))
}

func (c *TimesheetAPIController) Toggle(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ToggleSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	count := c.approvals.Toggle(approval.Ref{EmployeeID: dto.EmployeeID, Date: dto.Date})
	httpapi.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (c *TimesheetAPIController) ToggleEmployee(w http.ResponseWriter, r *http.Request) {
	var dto dtos.BatchSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	count := c.approvals.ToggleEmployeeBatch(dto.EmployeeID)
	httpapi.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (c *TimesheetAPIController) Approve(w http.ResponseWriter, r *http.Request) {
	count, err := c.approvals.Approve(r.Context())
	if err != nil {
		c.writeCommitError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.BulkActionResultToViewModel("approve", count))
}

func (c *TimesheetAPIController) Reject(w http.ResponseWriter, r *http.Request) {
	var dto dtos.RejectDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}
	count, err := c.approvals.Reject(r.Context(), dto.Reason)
	if err != nil {
		c.writeCommitError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.BulkActionResultToViewModel("reject", count))
}

func (c *TimesheetAPIController) writeCommitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrApprovalBusy):
		httpapi.WriteError(w, http.StatusConflict, services.ErrApprovalBusy.Code, services.ErrApprovalBusy.Message, nil)
	case errors.Is(err, services.ErrEmptySelection):
		httpapi.WriteError(w, http.StatusUnprocessableEntity, services.ErrEmptySelection.Code, services.ErrEmptySelection.Message, nil)
	default:
		httpapi.WriteUpstreamError(w, err)
	}
}
