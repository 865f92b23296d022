package viewmodels

type Colleague struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Avatar      string `json:"avatar,omitempty"`
	ManagerID   *int64 `json:"managerId,omitempty"`
	ReportCount int    `json:"reportCount"`
}

type ChartView struct {
	Current       Colleague   `json:"current"`
	Breadcrumb    []Colleague `json:"breadcrumb"`
	DirectReports []Colleague `json:"directReports"`
	Window        ListWindow  `json:"window"`
}

// ListWindow tells the client which slice of the report list to render and
// where to place it inside the scroll container.
type ListWindow struct {
	StartIndex     int `json:"startIndex"`
	EndIndex       int `json:"endIndex"`
	OffsetY        int `json:"offsetY"`
	ViewportHeight int `json:"viewportHeight"`
	TotalCount     int `json:"totalCount"`
}

type SearchView struct {
	Query     string      `json:"query"`
	Results   []Colleague `json:"results"`
	Total     int         `json:"total"`
	IsLimited bool        `json:"isLimited"`
}
