package approval

import "time"

// WeekOfMonth returns the 1-based, Monday-anchored week index of t within its
// month. Days before the first Monday still land in week 1.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	firstDayOffset := (int(first.Weekday()) + 6) % 7
	return (t.Day()+firstDayOffset-1)/7 + 1
}

// WeekOfISODate parses an YYYY-MM-DD date and places it in its month week.
// Malformed dates land in week 0 so they sort first instead of vanishing.
func WeekOfISODate(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return WeekOfMonth(t)
}
