package dailyreport

import (
	"strings"

	"github.com/vinbees/hive-sdk/pkg/serrors"
)

type DayType string

const (
	TypeWork          DayType = "Work"
	TypeVacation      DayType = "Vacation"
	TypeSickLeave     DayType = "Sick Leave"
	TypeDayOff        DayType = "Day Off"
	TypePublicHoliday DayType = "Public Holiday"
	TypeBusinessTrip  DayType = "Business Trip"
)

var dayTypes = map[DayType]struct{}{
	TypeWork:          {},
	TypeVacation:      {},
	TypeSickLeave:     {},
	TypeDayOff:        {},
	TypePublicHoliday: {},
	TypeBusinessTrip:  {},
}

func (t DayType) IsValid() bool {
	_, ok := dayTypes[t]
	return ok
}

// IsWork reports whether hours on this day type are user-entered. All other
// types carry fixed hours.
func (t DayType) IsWork() bool {
	return t == TypeWork || t == TypeBusinessTrip
}

type Status string

const (
	StatusDraft    Status = "draft"
	StatusNew      Status = "new"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrUnknownDayType = serrors.NewError("REPORT_UNKNOWN_DAY_TYPE", "unknown day type", "use one of the published day types")
	ErrBadDate        = serrors.NewError("REPORT_BAD_DATE", "date must be formatted YYYY-MM-DD", "")
	ErrTooManyHours   = serrors.NewError("REPORT_TOO_MANY_HOURS", "total hours cannot exceed 24", "")
	ErrNegativeHours  = serrors.NewError("REPORT_NEGATIVE_HOURS", "hours cannot be negative", "")
	ErrEmptyWorkDay   = serrors.NewError("REPORT_EMPTY_WORK_DAY", "a work day needs at least some hours", "")
)

// DailyReport is one employee-day. Hours on non-work day types are fixed at
// eight regular, zero overtime regardless of what the caller passed in.
type DailyReport struct {
	date          string
	dayType       DayType
	regularHours  float64
	overtimeHours float64
	status        Status
}

// New validates and normalizes a report. The 24 hour ceiling and the negative
// check run against the raw input, before non-work normalization.
func New(date string, dayType DayType, regular, overtime float64) (DailyReport, error) {
	date = strings.TrimSpace(date)
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return DailyReport{}, ErrBadDate
	}
	if !dayType.IsValid() {
		return DailyReport{}, ErrUnknownDayType
	}
	if regular < 0 || overtime < 0 {
		return DailyReport{}, ErrNegativeHours
	}
	if regular+overtime > 24 {
		return DailyReport{}, ErrTooManyHours
	}
	if dayType.IsWork() && regular+overtime == 0 {
		return DailyReport{}, ErrEmptyWorkDay
	}
	if !dayType.IsWork() {
		regular, overtime = 8, 0
	}
	return DailyReport{
		date:          date,
		dayType:       dayType,
		regularHours:  regular,
		overtimeHours: overtime,
		status:        StatusDraft,
	}, nil
}

// Hydrate rebuilds a report from stored backend data without validation.
func Hydrate(date string, dayType DayType, regular, overtime float64, status Status) DailyReport {
	return DailyReport{
		date:          date,
		dayType:       dayType,
		regularHours:  regular,
		overtimeHours: overtime,
		status:        status,
	}
}

func (r DailyReport) Date() string           { return r.date }
func (r DailyReport) DayType() DayType       { return r.dayType }
func (r DailyReport) RegularHours() float64  { return r.regularHours }
func (r DailyReport) OvertimeHours() float64 { return r.overtimeHours }
func (r DailyReport) Status() Status         { return r.status }
func (r DailyReport) IsPending() bool        { return r.status == StatusPending }

func (r DailyReport) WithStatus(status Status) DailyReport {
	r.status = status
	return r
}
