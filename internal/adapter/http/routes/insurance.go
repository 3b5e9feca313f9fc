package routes

import (
	"insurances/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathHirings   = "/hirings"
)

func addInsuranceRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, hiringHandler *handlers.HiringHandler) {
	proposals := rg.Group(PathProposals)
	{
		// /list is registered before /:id; gin prefers the static segment.
		proposals.GET("/list", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.POST("/add", proposalHandler.CreateProposal)
		proposals.PUT("/update/status", proposalHandler.UpdateProposalStatus)
	}

	hirings := rg.Group(PathHirings)
	{
		hirings.GET("/:id", hiringHandler.GetHiring)
		hirings.POST("/add", hiringHandler.CreateHiring)
	}
}
