package handlers

import (
	"errors"
	"net/http"

	request "retail_console/internal/adapter/http/dto/request"
	response "retail_console/internal/adapter/http/dto/response"
	"retail_console/internal/usecase"
	"retail_console/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProfilingPayload = pkg.NewDomainErrorSimple("INVALID_PROFILING_INPUT", "Invalid profiling payload", http.StatusBadRequest)
)

// ProfilingHandler serves the guided profiling wizard: the question set for
// the UI and the submission endpoint that persists the collected answers.

type ProfilingHandler struct {
	usecase usecase.IProfilingUseCase
}

func NewProfilingHandler(uc usecase.IProfilingUseCase) *ProfilingHandler {
	return &ProfilingHandler{usecase: uc}
}

func (h *ProfilingHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProfilingQuestions(h.usecase.Questions()))
}

// SubmitProfile stores the answers on the customer record and completes the
// profiling stage of the engagement.
func (h *ProfilingHandler) SubmitProfile(c *gin.Context) {
	engagementID := c.Param("engagement_id")

	var payload request.SubmitProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilingPayload.HTTPStatus, errInvalidProfilingPayload.ToHTTPError())
		return
	}

	engagement, err := h.usecase.SubmitProfile(c.Request.Context(), engagementID, payload.Answers, actorID(c))
	if err != nil {
		appErr := mapProfilingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

func mapProfilingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIncompleteProfile), errors.Is(err, usecase.ErrInvalidAnswer), errors.Is(err, usecase.ErrUnknownQuestion), errors.Is(err, usecase.ErrInvalidEngagementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return mapWorkflowError(err)
	}
}
