package viewmodels

type DailyReport struct {
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Status        string  `json:"status,omitempty"`
}

type CalendarDay struct {
	Date    string `json:"date"`
	DayType string `json:"dayType"`
	Name    string `json:"name,omitempty"`
}

type Month struct {
	Month         string        `json:"month"`
	MonthlyNorm   float64       `json:"monthlyNorm"`
	TotalRegular  float64       `json:"totalRegular"`
	TotalOvertime float64       `json:"totalOvertime"`
	Calendar      []CalendarDay `json:"calendar,omitempty"`
	Reports       []DailyReport `json:"reports"`
}

type WeekGroup struct {
	Week    int           `json:"week"`
	Reports []DailyReport `json:"reports"`
}

type EmployeeGroup struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Role          string      `json:"role"`
	TotalRegular  float64     `json:"totalRegular"`
	TotalOvertime float64     `json:"totalOvertime"`
	Weeks         []WeekGroup `json:"weeks"`
}

type EmployeeWeek struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Role    string        `json:"role"`
	Reports []DailyReport `json:"reports"`
}

type WeekEmployees struct {
	Week      int            `json:"week"`
	Employees []EmployeeWeek `json:"employees"`
}

type SelectedRef struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
}

type SelectionState struct {
	Selected []SelectedRef `json:"selected"`
	Count    int           `json:"count"`
}

type BulkActionResult struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}
