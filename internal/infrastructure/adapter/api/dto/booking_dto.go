package dto

import "github.com/andreysazonov/office-booking/internal/domain/entity"

// ReserveRequest represents the API request for booking a desk over one or
// more dates
type ReserveRequest struct {
	DeskNumber int      `json:"deskNumber" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Dates      []string `json:"dates" binding:"required,min=1"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
}

// OutcomeResponse is the per-date result of a reserve call
type OutcomeResponse struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	BookingID uint64 `json:"bookingId,omitempty"`
}

// ReserveResponse aggregates the per-date outcomes
type ReserveResponse struct {
	Outcomes []OutcomeResponse `json:"outcomes"`
	Booked   int               `json:"booked"`
	Rejected int               `json:"rejected"`
}

// NewReserveResponse converts domain outcomes to the API shape
func NewReserveResponse(outcomes []entity.ReservationOutcome) ReserveResponse {
	resp := ReserveResponse{
		Outcomes: make([]OutcomeResponse, 0, len(outcomes)),
	}
	for _, outcome := range outcomes {
		resp.Outcomes = append(resp.Outcomes, OutcomeResponse{
			Date:      outcome.Date,
			Status:    string(outcome.Status),
			Reason:    outcome.Reason,
			BookingID: outcome.BookingID,
		})
		if outcome.Booked() {
			resp.Booked++
		} else {
			resp.Rejected++
		}
	}
	return resp
}

// BookingResponse represents one booking with desk details
type BookingResponse struct {
	ID         uint64  `json:"id"`
	DeskNumber int     `json:"deskNumber"`
	Location   string  `json:"location"`
	Username   string  `json:"username"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Hours      float64 `json:"hours"`
}

// NewBookingResponse converts a joined booking row to the API shape
func NewBookingResponse(detail entity.BookingDetail) BookingResponse {
	return BookingResponse{
		ID:         detail.ID,
		DeskNumber: detail.DeskNumber,
		Location:   detail.Location,
		Username:   detail.Username,
		Date:       detail.StartTime.Format(entity.DateLayout),
		StartTime:  detail.StartTime.Format(entity.TimeOfDayLayout),
		EndTime:    detail.EndTime.Format(entity.TimeOfDayLayout),
		Hours:      entity.RoundHours(detail.DurationHours()),
	}
}

// NewBookingListResponse converts a slice of joined rows
func NewBookingListResponse(details []entity.BookingDetail) []BookingResponse {
	responses := make([]BookingResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, NewBookingResponse(detail))
	}
	return responses
}

// AvailabilityResponse reports whether a slot is free
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// CancelRangeRequest represents the API request for bulk cancellation by
// date range
type CancelRangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// CancelCountResponse reports how many bookings a bulk cancellation removed
type CancelCountResponse struct {
	Removed int64 `json:"removed"`
}

// WorkplaceResponse represents one desk of the catalog
type WorkplaceResponse struct {
	ID       uint64 `json:"id"`
	Number   int    `json:"number"`
	Location string `json:"location"`
}
