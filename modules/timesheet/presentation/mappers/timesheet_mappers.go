package mappers

import (
	"sort"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/modules/timesheet/domain/approval"
	"github.com/vinbees/hive-sdk/modules/timesheet/presentation/viewmodels"
	"github.com/vinbees/hive-sdk/modules/timesheet/services"
)

func ReportToViewModel(r dailyreport.DailyReport) viewmodels.DailyReport {
	return viewmodels.DailyReport{
		Date:          r.Date(),
		Type:          string(r.DayType()),
		RegularHours:  r.RegularHours(),
		OvertimeHours: r.OvertimeHours(),
		Status:        string(r.Status()),
	}
}

func ReportsToViewModels(reports []dailyreport.DailyReport) []viewmodels.DailyReport {
	out := make([]viewmodels.DailyReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, ReportToViewModel(r))
	}
	return out
}

// MonthToViewModel flattens the report and calendar maps into date-sorted
// slices so the wire shape is deterministic.
func MonthToViewModel(view services.MonthView) viewmodels.Month {
	m := viewmodels.Month{
		Month:         view.Sheet.Month,
		MonthlyNorm:   view.MonthlyNorm,
		TotalRegular:  view.TotalRegular,
		TotalOvertime: view.TotalOvertime,
		Reports:       make([]viewmodels.DailyReport, 0, len(view.Sheet.Reports)),
	}
	for _, r := range view.Sheet.Reports {
		m.Reports = append(m.Reports, ReportToViewModel(r))
	}
	sort.Slice(m.Reports, func(i, j int) bool { return m.Reports[i].Date < m.Reports[j].Date })

	if len(view.Sheet.Calendar) > 0 {
		m.Calendar = make([]viewmodels.CalendarDay, 0, len(view.Sheet.Calendar))
		for date, day := range view.Sheet.Calendar {
			m.Calendar = append(m.Calendar, viewmodels.CalendarDay{Date: date, DayType: day.DayType, Name: day.Name})
		}
		sort.Slice(m.Calendar, func(i, j int) bool { return m.Calendar[i].Date < m.Calendar[j].Date })
	}
	return m
}

func EmployeeGroupsToViewModels(groups []approval.EmployeeGroup) []viewmodels.EmployeeGroup {
	out := make([]viewmodels.EmployeeGroup, 0, len(groups))
	for _, g := range groups {
		vm := viewmodels.EmployeeGroup{
			ID:            g.ID,
			Name:          g.Name,
			Role:          g.Role,
			TotalRegular:  g.TotalRegular,
			TotalOvertime: g.TotalOvertime,
			Weeks:         make([]viewmodels.WeekGroup, 0, len(g.Weeks)),
		}
		for _, w := range g.Weeks {
			vm.Weeks = append(vm.Weeks, viewmodels.WeekGroup{Week: w.Week, Reports: ReportsToViewModels(w.Reports)})
		}
		out = append(out, vm)
	}
	return out
}

func WeekGroupsToViewModels(groups []approval.WeekEmployees) []viewmodels.WeekEmployees {
	out := make([]viewmodels.WeekEmployees, 0, len(groups))
	for _, g := range groups {
		vm := viewmodels.WeekEmployees{Week: g.Week, Employees: make([]viewmodels.EmployeeWeek, 0, len(g.Employees))}
		for _, e := range g.Employees {
			vm.Employees = append(vm.Employees, viewmodels.EmployeeWeek{
				ID:      e.ID,
				Name:    e.Name,
				Role:    e.Role,
				Reports: ReportsToViewModels(e.Reports),
			})
		}
		out = append(out, vm)
	}
	return out
}

func SelectionToViewModel(refs []approval.Ref) viewmodels.SelectionState {
	state := viewmodels.SelectionState{Selected: make([]viewmodels.SelectedRef, 0, len(refs)), Count: len(refs)}
	for _, ref := range refs {
		state.Selected = append(state.Selected, viewmodels.SelectedRef{EmployeeID: ref.EmployeeID, Date: ref.Date})
	}
	return state
}

func BulkActionResultToViewModel(action string, count int) viewmodels.BulkActionResult {
	return viewmodels.BulkActionResult{Action: action, Count: count}
}
