package constant

// RideStatus is stored as the literal string in the rides collection.
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

const (
	AmpmAM = "AM"
	AmpmPM = "PM"
)
