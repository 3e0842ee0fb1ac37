package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathBankAccount   = "/bank-account"
	PathPortfolio     = "/portfolio"
	PathNotifications = "/notifications"
)

// addProfileRoutes mounts the per-user resources that live outside a project.
func addProfileRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.PUT(PathBankAccount, h.Accounts.SaveBankAccount)
	rg.GET(PathBankAccount, h.Accounts.GetBankAccount)

	portfolio := rg.Group(PathPortfolio)
	{
		portfolio.POST("", h.Portfolio.CreatePortfolioItem)
		portfolio.GET("", h.Portfolio.ListPortfolio)
		portfolio.PATCH("/:id/approve", h.Portfolio.ApprovePortfolioItem)
		portfolio.PATCH("/:id/feature", h.Portfolio.FeaturePortfolioItem)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.Conversations.ListNotifications)
		notifications.PATCH("/:id/read", h.Conversations.MarkNotificationRead)
	}
}
