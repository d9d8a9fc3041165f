package entity

// ReservationStatus tags the per-date outcome of a reserve call
type ReservationStatus string

const (
	// StatusBooked means the date's booking was written to the ledger
	StatusBooked ReservationStatus = "booked"
	// StatusRejected means the date failed a policy or availability check
	StatusRejected ReservationStatus = "rejected"
)

// ReservationRequest is the input of the booking engine. Dates are
// evaluated independently; a multi-date request may partially succeed.
type ReservationRequest struct {
	DeskNumber  int      // Desk number within the location
	Location    string   // Location the desk belongs to
	RequesterID uint64   // Authenticated user making the request
	Dates       []string // Calendar dates in DateLayout format
	StartTime   string   // Time of day in TimeOfDayLayout format
	EndTime     string   // Time of day in TimeOfDayLayout format
}

// ReservationOutcome is one per-date result, returned in input order
type ReservationOutcome struct {
	Date      string            // The requested calendar date
	Status    ReservationStatus // booked or rejected
	Reason    string            // Human-readable explanation
	BookingID uint64            // Ledger id when Status is booked
	Err       error             // Taxonomy error when Status is rejected
}

// Booked reports whether the outcome committed a booking
func (o ReservationOutcome) Booked() bool {
	return o.Status == StatusBooked
}
