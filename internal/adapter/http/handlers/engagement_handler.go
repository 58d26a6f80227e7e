package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "retail_console/internal/adapter/http/dto/request"
	response "retail_console/internal/adapter/http/dto/response"
	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase"
	"retail_console/pkg"

	"github.com/gin-gonic/gin"
)

const actorHeader = "X-Actor-ID"

var (
	errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)
	errQCChecklistIncomplete    = pkg.NewDomainErrorSimple("QC_CHECKLIST_INCOMPLETE", "All quality checks must pass before completing the qc stage", http.StatusConflict)
)

// EngagementHandler handles HTTP requests for engagements and their
// fulfillment workflow.

type EngagementHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewEngagementHandler(uc usecase.IWorkflowUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

// actorID identifies the staff member performing the request. Empty when the
// header is absent; use cases tolerate that for reads and audit-only paths.
func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(actorHeader))
}

func (h *EngagementHandler) CreateEngagement(c *gin.Context) {
	var payload request.CreateEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEngagement(c.Request.Context(), payload.ResolveCustomerID())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEngagement(created))
}

func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	engagement, err := h.usecase.GetEngagement(c.Request.Context(), c.Param("engagement_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

// AdvanceStage records a stage outcome for an engagement.
//
// The qc stage carries an extra edge rule: a completed outcome is rejected
// here unless every required quality check in the checklist passed. The
// workflow engine itself does not re-validate checklist contents.
func (h *EngagementHandler) AdvanceStage(c *gin.Context) {
	engagementID := c.Param("engagement_id")
	stage := entities.Stage(strings.TrimSpace(c.Param("stage")))

	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	outcome := payload.ResolveOutcome()
	if stage == entities.StageQC && outcome == entities.StageStatusCompleted && !usecase.CanCompleteQC(payload.Checklist) {
		log.Printf("[engagement][handler] qc checklist incomplete engagement_id=%s", engagementID)
		c.JSON(errQCChecklistIncomplete.HTTPStatus, errQCChecklistIncomplete.ToHTTPError())
		return
	}

	engagement, err := h.usecase.Advance(c.Request.Context(), engagementID, stage, outcome, payload.ToStageDetail(), actorID(c))
	if err != nil {
		log.Printf("[engagement][handler] advance failed engagement_id=%s stage=%s err=%v", engagementID, stage, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEngagementID), errors.Is(err, usecase.ErrInvalidStageOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStage):
		return pkg.NewDomainErrorSimple("UNKNOWN_STAGE", "Unknown workflow stage", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageOutOfOrder):
		return pkg.NewDomainErrorSimple("STAGE_OUT_OF_ORDER", "Earlier pipeline stages must complete first", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Engagement was updated concurrently, retry with fresh state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
