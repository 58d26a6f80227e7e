package handlers

import (
	"context"
	"errors"
	"net/http"

	request "retail_console/internal/adapter/http/dto/request"
	response "retail_console/internal/adapter/http/dto/response"
	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase"
	"retail_console/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations and their
// draft/sent/accepted/rejected lifecycle.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuotation(c.Request.Context(), payload.ResolveEngagementID(), payload.ToLineItems())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// GetQuotationByEngagement resolves the single quotation attached to an
// engagement.
func (h *QuotationHandler) GetQuotationByEngagement(c *gin.Context) {
	q, err := h.usecase.GetByEngagementID(c.Request.Context(), c.Param("engagement_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) SendQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.SendQuotation)
}

// AcceptQuotation also completes the quotation stage of the owning
// engagement, so the pipeline opens up for profiling.
func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, func(ctx context.Context, id string) (entities.Quotation, error) {
		return h.usecase.AcceptQuotation(ctx, id, actorID(c))
	})
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.RejectQuotation)
}

func (h *QuotationHandler) patchQuotationStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quotation, error),
) {
	q, err := updater(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidEngagementID),
		errors.Is(err, usecase.ErrEmptyQuotation),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_EXISTS", "Quotation already exists for this engagement", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quotation status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageOutOfOrder):
		return pkg.NewDomainErrorSimple("STAGE_OUT_OF_ORDER", "Earlier pipeline stages must complete first", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Engagement was updated concurrently, retry with fresh state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
