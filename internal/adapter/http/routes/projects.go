package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathProjects   = "/projects"
	PathAgreements = "/agreements"
)

func addProjectRoutes(rg *gin.RouterGroup, h Handlers) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.Projects.CreateProject)
		projects.GET("", h.Projects.ListProjects)
		projects.GET("/:id", h.Projects.GetProject)
		projects.PATCH("/:id/assign", h.Projects.AssignWorker)
		projects.PATCH("/:id/negotiate", h.Projects.OpenNegotiation)
		projects.PATCH("/:id/approve", h.Projects.ApproveProject)
		projects.PATCH("/:id/cancel", h.Projects.CancelProject)
		projects.PATCH("/:id/flag", h.Projects.FlagProject)
		projects.POST("/:id/reconcile", h.Reconcile.ReconcileProject)

		projects.POST("/:id/agreements", h.Agreements.ProposePrice)
		projects.GET("/:id/agreements/active", h.Agreements.GetActiveAgreement)

		projects.POST("/:id/payments", h.Payments.RecordPayment)
		projects.POST("/:id/checkout", h.Payments.Checkout)
		projects.GET("/:id/payments", h.Payments.ListPayments)

		projects.POST("/:id/files", h.Files.UploadFile)
		projects.GET("/:id/files", h.Files.ListFiles)

		projects.GET("/:id/payout", h.Payouts.GetProjectPayout)

		projects.POST("/:id/messages", h.Conversations.SendMessage)
		projects.GET("/:id/messages", h.Conversations.ListMessages)
	}

	agreements := rg.Group(PathAgreements)
	{
		agreements.PATCH("/:id/accept", h.Agreements.AcceptPrice)
		agreements.PATCH("/:id/decline", h.Agreements.DeclinePrice)
	}
}
