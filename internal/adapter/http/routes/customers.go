package routes

import (
	"dealer_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathVerification = "/verification"
	PathDrafts       = "/drafts"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.VerificationHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.SearchCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("/:id/verify", h.VerifyCustomer)
	}

	verification := rg.Group(PathVerification)
	{
		verification.POST("/scan", h.ScanDocument)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("/:key", h.GetDraft)
		drafts.PUT("/:key", h.PutDraft)
		drafts.DELETE("/:key", h.DeleteDraft)
	}
}
