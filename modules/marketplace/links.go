package marketplace

import "github.com/vinbees/hive-sdk/pkg/types"

var MarketplaceLink = types.NavigationItem{
	Name: "Marketplace",
	Href: "/marketplace/api/listings",
}

var NavItems = []types.NavigationItem{
	MarketplaceLink,
}
