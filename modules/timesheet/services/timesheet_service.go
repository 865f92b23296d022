package services

import (
	"context"
	"sync"
	"time"

	"github.com/vinbees/hive-sdk/modules/timesheet/domain/aggregates/dailyreport"
	"github.com/vinbees/hive-sdk/pkg/serrors"
)

var ErrMonthNotLoaded = serrors.NewError("TIMESHEET_NOT_LOADED", "no month loaded", "call LoadMonth first")

// MonthView is the assembled own-hours month: the sheet plus derived totals.
// Overtime only counts work days; regular hours count everything.
type MonthView struct {
	Sheet         dailyreport.MonthSheet
	MonthlyNorm   float64
	TotalRegular  float64
	TotalOvertime float64
}

// TimesheetService owns the viewer's current month. A save round-trips to the
// backend first and only then lands in local state, so a failed save leaves
// the sheet exactly as loaded.
type TimesheetService struct {
	repo dailyreport.Repository

	mu    sync.RWMutex
	sheet dailyreport.MonthSheet
}

func NewTimesheetService(repo dailyreport.Repository) *TimesheetService {
	return &TimesheetService{repo: repo}
}

func (s *TimesheetService) LoadMonth(ctx context.Context, month string) (MonthView, error) {
	sheet, err := s.repo.GetMonth(ctx, month)
	if err != nil {
		return MonthView{}, err
	}

	s.mu.Lock()
	s.sheet = sheet
	s.mu.Unlock()

	return buildView(sheet), nil
}

func (s *TimesheetService) Month() (MonthView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sheet.Month == "" {
		return MonthView{}, ErrMonthNotLoaded
	}
	return buildView(s.sheet), nil
}

// SaveDay validates and saves one report, then folds it into the loaded month
// when the date belongs to it.
func (s *TimesheetService) SaveDay(ctx context.Context, date string, dayType dailyreport.DayType, regular, overtime float64) (dailyreport.DailyReport, error) {
	report, err := dailyreport.New(date, dayType, regular, overtime)
	if err != nil {
		return dailyreport.DailyReport{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dailyreport.DailyReport{}, err
	}

	s.mu.Lock()
	if s.sheet.Reports != nil && len(date) >= 7 && s.sheet.Month == date[:7] {
		s.sheet.Reports[date] = report
	}
	s.mu.Unlock()

	return report, nil
}

func buildView(sheet dailyreport.MonthSheet) MonthView {
	view := MonthView{Sheet: sheet}
	for _, r := range sheet.Reports {
		view.TotalRegular += r.RegularHours()
		if r.DayType().IsWork() {
			view.TotalOvertime += r.OvertimeHours()
		}
	}
	if sheet.MonthlyNorm != nil {
		view.MonthlyNorm = *sheet.MonthlyNorm
	} else {
		view.MonthlyNorm = fallbackNorm(sheet.Month)
	}
	return view
}

// fallbackNorm is eight hours per Monday-to-Friday day of the month, used
// when the backend serves the legacy shape without a norm.
func fallbackNorm(month string) float64 {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return 0
	}
	weekdays := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			weekdays++
		}
	}
	return float64(weekdays * 8)
}
