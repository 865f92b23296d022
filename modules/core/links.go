package core

import "github.com/vinbees/hive-sdk/pkg/types"

var ProfileLink = types.NavigationItem{
	Name: "My Profile",
	Href: "/core/api/profile",
}

var NavItems = []types.NavigationItem{
	ProfileLink,
}
