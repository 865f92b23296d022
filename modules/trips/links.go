package trips

import "github.com/vinbees/hive-sdk/pkg/types"

var TripsLink = types.NavigationItem{
	Name: "Business Trips",
	Href: "/trips/api/trips",
}

var NavItems = []types.NavigationItem{
	TripsLink,
}
