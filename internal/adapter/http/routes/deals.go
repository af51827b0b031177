package routes

import (
	"dealer_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeals      = "/deals"
	PathWorksheets = "/worksheets"
)

func addWorksheetRoutes(rg *gin.RouterGroup) {
	worksheets := rg.Group(PathWorksheets)
	{
		worksheets.POST("/calculate", handlers.CalculateWorksheet)
	}
}

func addDealRoutes(rg *gin.RouterGroup, dealHandler *handlers.DealHandler, depositHandler *handlers.DepositHandler) {
	deals := rg.Group(PathDeals)
	{
		deals.POST("", dealHandler.CreateDeal)
		deals.GET("", dealHandler.ListDeals)
		deals.GET("/:id", dealHandler.GetDeal)

		deals.PUT("/:id/customer", dealHandler.UpdateCustomer)
		deals.PUT("/:id/vehicle", dealHandler.UpdateVehicle)
		deals.PUT("/:id/trade", dealHandler.UpdateTrade)
		deals.PUT("/:id/disclosure", dealHandler.UpdateDisclosure)
		deals.PUT("/:id/worksheet", dealHandler.SaveWorksheet)
		deals.PUT("/:id/delivery", dealHandler.SaveDelivery)

		deals.PATCH("/:id/submit", dealHandler.SubmitDeal)
		deals.PATCH("/:id/cancel", dealHandler.CancelDeal)
	}

	if depositHandler == nil {
		return
	}
	deposits := deals.Group("/:id/deposits")
	{
		deposits.POST("", depositHandler.CreateDeposit)
		deposits.GET("", depositHandler.ListDeposits)
		deposits.GET("/latest", depositHandler.GetLatestDeposit)
	}
}
