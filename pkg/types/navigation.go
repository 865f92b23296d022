package types

// NavigationItem describes an entry in the client's navigation tree. Modules
// register these so the app shell and spotlight can surface them.
type NavigationItem struct {
	Name     string
	Href     string
	Children []NavigationItem
}
