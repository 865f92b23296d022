package dailyreport

import "context"

// CalendarDay is production-calendar metadata for one date: weekends and
// public holidays as the backend knows them.
type CalendarDay struct {
	DayType string
	Name    string
}

// MonthSheet is the viewer's own month: reports keyed by YYYY-MM-DD date.
// MonthlyNorm is nil when the backend serves the legacy shape without it.
type MonthSheet struct {
	Month       string
	MonthlyNorm *float64
	Calendar    map[string]CalendarDay
	Reports     map[string]DailyReport
}

type Repository interface {
	GetMonth(ctx context.Context, month string) (MonthSheet, error)
	Save(ctx context.Context, report DailyReport) error
}
