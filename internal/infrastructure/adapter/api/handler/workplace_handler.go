package handler

import (
	"net/http"

	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WorkplaceHandler serves the desk catalog
type WorkplaceHandler struct {
	workplaceRepo persistence.WorkplaceRepository
	logger        coreport.Logger
}

// NewWorkplaceHandler creates a new workplace handler instance
func NewWorkplaceHandler(workplaceRepo persistence.WorkplaceRepository, logger coreport.Logger) *WorkplaceHandler {
	return &WorkplaceHandler{
		workplaceRepo: workplaceRepo,
		logger:        logger,
	}
}

// List handles the GET /workplaces endpoint, optionally narrowed by location
func (h *WorkplaceHandler) List(c *gin.Context) {
	location := c.Query("location")

	var err error
	var responses []dto.WorkplaceResponse
	if location != "" {
		desks, listErr := h.workplaceRepo.ListByLocation(c.Request.Context(), location)
		err = listErr
		for _, desk := range desks {
			responses = append(responses, dto.WorkplaceResponse{ID: desk.ID, Number: desk.Number, Location: desk.Location})
		}
	} else {
		desks, listErr := h.workplaceRepo.List(c.Request.Context())
		err = listErr
		for _, desk := range desks {
			responses = append(responses, dto.WorkplaceResponse{ID: desk.ID, Number: desk.Number, Location: desk.Location})
		}
	}

	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	if responses == nil {
		responses = []dto.WorkplaceResponse{}
	}
	c.JSON(http.StatusOK, responses)
}

// Locations handles the GET /locations endpoint
func (h *WorkplaceHandler) Locations(c *gin.Context) {
	locations, err := h.workplaceRepo.Locations(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	if locations == nil {
		locations = []string{}
	}
	c.JSON(http.StatusOK, locations)
}
