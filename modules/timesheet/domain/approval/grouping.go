package approval

import (
	"sort"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
)

// FilterAll disables status filtering.
const FilterAll = "all"

// Employee is one subordinate with their month of reports, date-ordered.
type Employee struct {
	ID      int64
	Name    string
	Role    string
	Reports []dailyreport.DailyReport
}

// SortReports orders the reports chronologically in place. ISO dates make the
// lexicographic order the chronological one.
func (e *Employee) SortReports() {
	sort.SliceStable(e.Reports, func(i, j int) bool {
		return e.Reports[i].Date() < e.Reports[j].Date()
	})
}

func (e Employee) filtered(statusFilter string) []dailyreport.DailyReport {
	if statusFilter == FilterAll || statusFilter == "" {
		return e.Reports
	}
	out := make([]dailyreport.DailyReport, 0, len(e.Reports))
	for _, r := range e.Reports {
		if string(r.Status()) == statusFilter {
			out = append(out, r)
		}
	}
	return out
}

// PendingDates lists the dates of the employee's pending reports, in order.
func (e Employee) PendingDates() []string {
	dates := make([]string, 0, len(e.Reports))
	for _, r := range e.Reports {
		if r.IsPending() {
			dates = append(dates, r.Date())
		}
	}
	return dates
}

type WeekGroup struct {
	Week    int
	Reports []dailyreport.DailyReport
}

// EmployeeGroup is one employee's filtered reports bucketed by month week,
// weeks ascending. The hour totals ignore the filter so the header always
// shows the employee's full month.
type EmployeeGroup struct {
	ID            int64
	Name          string
	Role          string
	TotalRegular  float64
	TotalOvertime float64
	Weeks         []WeekGroup
}

// GroupByEmployeeThenWeek builds the employee-first view. Employees whose
// reports all fall outside the filter are omitted entirely.
func GroupByEmployeeThenWeek(employees []Employee, statusFilter string) []EmployeeGroup {
	groups := make([]EmployeeGroup, 0, len(employees))
	for _, e := range employees {
		filtered := e.filtered(statusFilter)
		if len(filtered) == 0 {
			continue
		}

		g := EmployeeGroup{ID: e.ID, Name: e.Name, Role: e.Role}
		for _, r := range e.Reports {
			g.TotalRegular += r.RegularHours()
			g.TotalOvertime += r.OvertimeHours()
		}
		g.Weeks = bucketByWeek(filtered)
		groups = append(groups, g)
	}
	return groups
}

type WeekEmployees struct {
	Week      int
	Employees []EmployeeWeek
}

// EmployeeWeek is one employee's reports inside a single week bucket.
type EmployeeWeek struct {
	ID      int64
	Name    string
	Role    string
	Reports []dailyreport.DailyReport
}

// GroupByWeekThenEmployee builds the inverted view: weeks ascending, each week
// listing the employees that reported in it, in input order.
func GroupByWeekThenEmployee(employees []Employee, statusFilter string) []WeekEmployees {
	byWeek := make(map[int]*WeekEmployees)
	weekOrder := make([]int, 0, 6)

	for _, e := range employees {
		for _, r := range e.filtered(statusFilter) {
			week := WeekOfISODate(r.Date())
			bucket, ok := byWeek[week]
			if !ok {
				bucket = &WeekEmployees{Week: week}
				byWeek[week] = bucket
				weekOrder = append(weekOrder, week)
			}

			n := len(bucket.Employees)
			if n == 0 || bucket.Employees[n-1].ID != e.ID {
				bucket.Employees = append(bucket.Employees, EmployeeWeek{ID: e.ID, Name: e.Name, Role: e.Role})
				n++
			}
			bucket.Employees[n-1].Reports = append(bucket.Employees[n-1].Reports, r)
		}
	}

	sort.Ints(weekOrder)
	out := make([]WeekEmployees, 0, len(weekOrder))
	for _, week := range weekOrder {
		out = append(out, *byWeek[week])
	}
	return out
}

func bucketByWeek(reports []dailyreport.DailyReport) []WeekGroup {
	byWeek := make(map[int]int)
	groups := make([]WeekGroup, 0, 6)
	for _, r := range reports {
		week := WeekOfISODate(r.Date())
		idx, ok := byWeek[week]
		if !ok {
			idx = len(groups)
			byWeek[week] = idx
			groups = append(groups, WeekGroup{Week: week})
		}
		groups[idx].Reports = append(groups[idx].Reports, r)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Week < groups[j].Week })
	return groups
}
