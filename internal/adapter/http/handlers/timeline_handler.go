package handlers

import (
	"errors"
	"log"
	"net/http"

	request "retail_console/internal/adapter/http/dto/request"
	response "retail_console/internal/adapter/http/dto/response"
	"retail_console/internal/usecase"
	"retail_console/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTimelinePayload = pkg.NewDomainErrorSimple("INVALID_TIMELINE_INPUT", "Invalid timeline payload", http.StatusBadRequest)
)

// TimelineHandler serves the merged payment history panel for a quotation
// and the two append paths feeding it.

type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	entries, bill, err := h.usecase.GetTimeline(c.Request.Context(), quotationID)
	if err != nil {
		appErr := mapTimelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(entries, bill))
}

func (h *TimelineHandler) AddStaffNote(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	var payload request.StaffNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimelinePayload.HTTPStatus, errInvalidTimelinePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddStaffNote(c.Request.Context(), quotationID, payload.Note, payload.FollowUpOn, actorID(c))
	if err != nil {
		log.Printf("[timeline][handler] add note failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapTimelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStaffResponse(created))
}

// RaiseAlert appends a system billing event to the payment timeline. This is
// the entry point reminder jobs call; it never mutates workflow state.
func (h *TimelineHandler) RaiseAlert(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	var payload request.AlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimelinePayload.HTTPStatus, errInvalidTimelinePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RaiseAlert(c.Request.Context(), quotationID, payload.Type, payload.Message)
	if err != nil {
		log.Printf("[timeline][handler] raise alert failed quotation_id=%s type=%s err=%v", quotationID, payload.Type, err)
		appErr := mapTimelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentEvent(created))
}

func mapTimelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrEmptyStaffNote), errors.Is(err, usecase.ErrUnknownAlertType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
