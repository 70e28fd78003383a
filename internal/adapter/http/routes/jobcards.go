package routes

import (
	"jobcard_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobCards = "/jobcards"
)

func addJobCardRoutes(rg *gin.RouterGroup, jobCardHandler *handlers.JobCardHandler, closureHandler *handlers.JobClosureHandler) {
	jobcards := rg.Group(PathJobCards)
	{
		jobcards.POST("", jobCardHandler.CreateJobCard)
		jobcards.GET("", jobCardHandler.ListJobCards)
		jobcards.GET("/:id", jobCardHandler.GetJobCard)
		jobcards.PATCH("/:id", jobCardHandler.UpdateJobCardDetails)

		// Parts ledger and labor charge, version-checked mutations.
		jobcards.POST("/:id/parts", jobCardHandler.AddPart)
		jobcards.DELETE("/:id/parts/:sku", jobCardHandler.RemovePart)
		jobcards.PATCH("/:id/labor", jobCardHandler.SetLaborCharge)

		// The only path by which a job card becomes CLOSED.
		jobcards.POST("/:id/close", closureHandler.CloseJobCard)
	}
}
