package vinbees

import "encoding/json"

// Colleague is a person record as served by GET /colleagues. ManagerID is nil
// for top-level people; the backend may also send ids that resolve to nobody.
type Colleague struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	ManagerID *int64 `json:"managerId"`
}

type DailyReport struct {
	Type          string  `json:"type"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Status        string  `json:"status,omitempty"`
}

type CalendarDay struct {
	DayType string `json:"dayType"`
	Name    string `json:"name,omitempty"`
}

// Timesheet is the month payload of GET /timesheet. The backend has two wire
// shapes: the current one wraps reports with monthlyNorm and calendar metadata,
// the legacy one is the bare reports map. UnmarshalJSON accepts both.
type Timesheet struct {
	MonthlyNorm *float64               `json:"monthlyNorm"`
	Calendar    map[string]CalendarDay `json:"calendar"`
	Reports     map[string]DailyReport `json:"reports"`
}

func (t *Timesheet) UnmarshalJSON(data []byte) error {
	type wrapped Timesheet
	var w wrapped
	if err := json.Unmarshal(data, &w); err == nil && w.Reports != nil {
		*t = Timesheet(w)
		return nil
	}

	var legacy map[string]DailyReport
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	*t = Timesheet{Reports: legacy}
	return nil
}

// SubordinateSheet is one employee's slice of GET /timesheet/subordinates.
type SubordinateSheet struct {
	ID      int64                  `json:"id"`
	Name    string                 `json:"name"`
	Role    string                 `json:"role"`
	Reports map[string]DailyReport `json:"reports"`
}

// ReportRef addresses a single daily report in bulk approval calls.
type ReportRef struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
}

type ApprovalResult struct {
	Success  bool `json:"success"`
	Approved int  `json:"approved"`
}

type RejectionResult struct {
	Success  bool `json:"success"`
	Rejected int  `json:"rejected"`
}

type Profile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	Honey      int64  `json:"honey"`
	Reputation int    `json:"reputation"`
	Avatar     string `json:"avatar"`
	Gender     string `json:"gender,omitempty"`
	Hobby      string `json:"hobby,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
}

type InventoryItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Rarity        string `json:"rarity"`
	Icon          string `json:"icon"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	AuditRequired bool   `json:"auditRequired,omitempty"`
}

type IncomingTransfer struct {
	ID       string        `json:"id"`
	FromUser Profile       `json:"fromUser"`
	Item     InventoryItem `json:"item"`
	Quantity int           `json:"quantity"`
}

type Listing struct {
	ID          string  `json:"id"`
	Seller      string  `json:"seller"`
	SellerID    *int64  `json:"sellerId,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Rarity      string  `json:"rarity"`
	Type        string  `json:"type"`
}

type TripExpense struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Amount   float64 `json:"amount"`
	FileName string `json:"fileName,omitempty"`
}

type Trip struct {
	ID          string        `json:"id"`
	Status      string        `json:"status"`
	DateFrom    string        `json:"dateFrom"`
	DateTo      string        `json:"dateTo"`
	Destination string        `json:"destination"`
	Goal        string        `json:"goal"`
	Expenses    []TripExpense `json:"expenses"`
}

type Request struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Category  string `json:"category"`
	ShortDesc string `json:"shortDesc"`
	FullDesc  string `json:"fullDesc"`
	CreatedBy int64  `json:"createdBy"`
}

type Ack struct {
	Success bool `json:"success"`
}
