package handler

import (
	"net/http"
	"strconv"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/usecase"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/dto"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles reservation HTTP requests
type BookingHandler struct {
	bookingService usecase.BookingUseCase
	logger         coreport.Logger
}

// NewBookingHandler creates a new booking handler instance
func NewBookingHandler(bookingService usecase.BookingUseCase, logger coreport.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Reserve handles the POST /bookings endpoint. Each requested date gets its
// own outcome; an unknown desk or requester fails the whole call.
func (h *BookingHandler) Reserve(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMalformedTime),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	outcomes, err := h.bookingService.Reserve(c.Request.Context(), entity.ReservationRequest{
		DeskNumber:  req.DeskNumber,
		Location:    req.Location,
		RequesterID: requesterID,
		Dates:       req.Dates,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	resp := dto.NewReserveResponse(outcomes)
	status := http.StatusCreated
	if resp.Booked == 0 {
		// Nothing was committed, signal the batch-level failure
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

// Availability handles the GET /workplaces/:placeId/availability endpoint
func (h *BookingHandler) Availability(c *gin.Context) {
	placeID, err := strconv.ParseUint(c.Param("placeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrWorkplaceNotFound),
			Message: "Invalid workplace ID format",
		})
		return
	}

	date := c.Query("date")
	start, err := entity.CombineDateTime(date, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}
	end, err := entity.CombineDateTime(date, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	available, err := h.bookingService.IsAvailable(c.Request.Context(), placeID, start, end)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

// Cancel handles the DELETE /bookings/:bookingId endpoint
func (h *BookingHandler) Cancel(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrBookingNotFound),
			Message: "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), bookingID, requesterID); err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelUpcoming handles the DELETE /bookings/upcoming endpoint
func (h *BookingHandler) CancelUpcoming(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	removed, err := h.bookingService.CancelUpcoming(c.Request.Context(), requesterID)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CancelCountResponse{Removed: removed})
}

// CancelRange handles the POST /bookings/cancel-range endpoint
func (h *BookingHandler) CancelRange(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	var req dto.CancelRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMalformedTime),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	removed, err := h.bookingService.CancelRange(c.Request.Context(), requesterID, req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CancelCountResponse{Removed: removed})
}

// MyBookings handles the GET /bookings endpoint
func (h *BookingHandler) MyBookings(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	details, err := h.bookingService.UserBookings(c.Request.Context(), requesterID)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingListResponse(details))
}

// Schedule handles the GET /schedule endpoint, the data behind the
// per-location daily grid
func (h *BookingHandler) Schedule(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnknownLocation),
			Message: "Missing required query parameter: location",
		})
		return
	}

	details, err := h.bookingService.Schedule(c.Request.Context(), location, c.Query("date"))
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingListResponse(details))
}
