package requests

import "github.com/vinbees/hive-sdk/pkg/types"

var RequestsLink = types.NavigationItem{
	Name: "Requests",
	Href: "/requests/api/requests",
}

var NavItems = []types.NavigationItem{
	RequestsLink,
}
