package domain

// Table is a mongo collection name
type Table string

const (
	TableListingActivities Table = "listing_activities"
)
