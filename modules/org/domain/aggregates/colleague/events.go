package colleague

// RefreshedEvent fires after the colleague list has been reloaded from the
// platform and the org graph rebuilt.
type RefreshedEvent struct {
	Count int
}
