package platform

import (
	"context"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/modules/timesheet/domain/approval"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type TimesheetAPI interface {
	GetTimesheet(ctx context.Context, month string) (*vinbees.Timesheet, error)
	SaveDailyReport(ctx context.Context, date string, report vinbees.DailyReport) error
	GetSubordinateTimesheets(ctx context.Context, month string) (map[string]vinbees.SubordinateSheet, error)
	ApproveReports(ctx context.Context, refs []vinbees.ReportRef) (*vinbees.ApprovalResult, error)
	RejectReports(ctx context.Context, refs []vinbees.ReportRef, reason string) (*vinbees.RejectionResult, error)
}

type PlatformTimesheetRepository struct {
	api TimesheetAPI
}

func NewTimesheetRepository(api TimesheetAPI) dailyreport.Repository {
	return &PlatformTimesheetRepository{api: api}
}

func (r *PlatformTimesheetRepository) GetMonth(ctx context.Context, month string) (dailyreport.MonthSheet, error) {
	ts, err := r.api.GetTimesheet(ctx, month)
	if err != nil {
		return dailyreport.MonthSheet{}, errors.Wrapf(err, "failed to fetch timesheet for %s", month)
	}

	sheet := dailyreport.MonthSheet{
		Month:       month,
		MonthlyNorm: ts.MonthlyNorm,
		Reports:     make(map[string]dailyreport.DailyReport, len(ts.Reports)),
	}
	if len(ts.Calendar) > 0 {
		sheet.Calendar = make(map[string]dailyreport.CalendarDay, len(ts.Calendar))
		for date, day := range ts.Calendar {
			sheet.Calendar[date] = dailyreport.CalendarDay{DayType: day.DayType, Name: day.Name}
		}
	}
	for date, dto := range ts.Reports {
		sheet.Reports[date] = hydrateReport(date, dto)
	}
	return sheet, nil
}

func (r *PlatformTimesheetRepository) Save(ctx context.Context, report dailyreport.DailyReport) error {
	dto := vinbees.DailyReport{
		Type:          string(report.DayType()),
		RegularHours:  report.RegularHours(),
		OvertimeHours: report.OvertimeHours(),
	}
	if err := r.api.SaveDailyReport(ctx, report.Date(), dto); err != nil {
		return errors.Wrapf(err, "failed to save report for %s", report.Date())
	}
	return nil
}

type PlatformApprovalRepository struct {
	api TimesheetAPI
}

func NewApprovalRepository(api TimesheetAPI) approval.Repository {
	return &PlatformApprovalRepository{api: api}
}

// GetSubordinates flattens the backend's id-keyed map into an id-ordered
// slice with date-sorted reports.
func (r *PlatformApprovalRepository) GetSubordinates(ctx context.Context, month string) ([]approval.Employee, error) {
	sheets, err := r.api.GetSubordinateTimesheets(ctx, month)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch subordinate timesheets for %s", month)
	}

	employees := make([]approval.Employee, 0, len(sheets))
	for key, sheet := range sheets {
		id := sheet.ID
		if id == 0 {
			if parsed, perr := strconv.ParseInt(key, 10, 64); perr == nil {
				id = parsed
			}
		}
		e := approval.Employee{
			ID:      id,
			Name:    sheet.Name,
			Role:    sheet.Role,
			Reports: make([]dailyreport.DailyReport, 0, len(sheet.Reports)),
		}
		for date, dto := range sheet.Reports {
			e.Reports = append(e.Reports, hydrateReport(date, dto))
		}
		e.SortReports()
		employees = append(employees, e)
	}
	sort.SliceStable(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (r *PlatformApprovalRepository) Approve(ctx context.Context, refs []approval.Ref) (int, error) {
	res, err := r.api.ApproveReports(ctx, toReportRefs(refs))
	if err != nil {
		return 0, errors.Wrap(err, "failed to approve reports")
	}
	return res.Approved, nil
}

func (r *PlatformApprovalRepository) Reject(ctx context.Context, refs []approval.Ref, reason string) (int, error) {
	res, err := r.api.RejectReports(ctx, toReportRefs(refs), reason)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reject reports")
	}
	return res.Rejected, nil
}

func toReportRefs(refs []approval.Ref) []vinbees.ReportRef {
	out := make([]vinbees.ReportRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, vinbees.ReportRef{EmployeeID: ref.EmployeeID, Date: ref.Date})
	}
	return out
}

func hydrateReport(date string, dto vinbees.DailyReport) dailyreport.DailyReport {
	return dailyreport.Hydrate(
		date,
		dailyreport.DayType(dto.Type),
		dto.RegularHours,
		dto.OvertimeHours,
		dailyreport.Status(dto.Status),
	)
}
