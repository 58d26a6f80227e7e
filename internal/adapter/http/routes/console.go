package routes

import (
	"retail_console/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEngagements = "/engagements"
	PathQuotations  = "/quotations"
	PathProfiling   = "/profiling"
)

func addConsoleRoutes(
	rg *gin.RouterGroup,
	engagementHandler *handlers.EngagementHandler,
	profilingHandler *handlers.ProfilingHandler,
	quotationHandler *handlers.QuotationHandler,
	timelineHandler *handlers.TimelineHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	engagements := rg.Group(PathEngagements)
	{
		engagements.POST("", engagementHandler.CreateEngagement)
		engagements.GET("/:engagement_id", engagementHandler.GetEngagement)
		engagements.POST("/:engagement_id/stages/:stage", engagementHandler.AdvanceStage)
		engagements.GET("/:engagement_id/quotation", quotationHandler.GetQuotationByEngagement)
		engagements.POST("/:engagement_id/profile", profilingHandler.SubmitProfile)
	}

	profiling := rg.Group(PathProfiling)
	{
		profiling.GET("/questions", profilingHandler.GetQuestions)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.PATCH("/:quotation_id/send", quotationHandler.SendQuotation)
		quotations.PATCH("/:quotation_id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.RejectQuotation)

		quotations.GET("/:quotation_id/timeline", timelineHandler.GetTimeline)
		quotations.POST("/:quotation_id/notes", timelineHandler.AddStaffNote)
		quotations.POST("/:quotation_id/alerts", timelineHandler.RaiseAlert)
		quotations.POST("/:quotation_id/payments", paymentHandler.RecordPayment)
	}
}
