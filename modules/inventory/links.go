package inventory

import "github.com/vinbees/hive-sdk/pkg/types"

var InventoryLink = types.NavigationItem{
	Name: "Inventory",
	Href: "/inventory/api/items",
}

var NavItems = []types.NavigationItem{
	InventoryLink,
}
