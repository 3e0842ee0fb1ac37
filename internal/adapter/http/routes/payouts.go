package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathPayouts = "/payouts"
	PathAdmin   = "/admin"
)

func addPayoutRoutes(rg *gin.RouterGroup, h Handlers) {
	payouts := rg.Group(PathPayouts)
	{
		payouts.GET("", h.Payouts.ListPayouts)
		payouts.PATCH("/:id/sent", h.Payouts.MarkAsSent)
		payouts.PATCH("/:id/confirm", h.Payouts.ConfirmReceipt)
		payouts.POST("/:id/transfer", h.Payouts.InitiateTransfer)
	}

	rg.Group(PathAdmin).POST("/reconcile", h.Reconcile.ReconcileAll)
}
