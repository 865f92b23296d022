package timesheet

import "github.com/vinbees/hive-sdk/pkg/types"

var MyHoursLink = types.NavigationItem{
	Name: "My Hours",
	Href: "/timesheet/api/month",
}

var ApprovalsLink = types.NavigationItem{
	Name: "Approvals",
	Href: "/timesheet/api/approvals",
}

var NavItems = []types.NavigationItem{
	{
		Name:     "Timesheet",
		Href:     "/timesheet",
		Children: []types.NavigationItem{MyHoursLink, ApprovalsLink},
	},
}
