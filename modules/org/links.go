package org

import "github.com/vinbees/hive-sdk/pkg/types"

var HiveChartLink = types.NavigationItem{
	Name: "Hive Chart",
	Href: "/org/api/chart",
}

var NavItems = []types.NavigationItem{
	HiveChartLink,
}
