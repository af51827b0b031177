package routes

import (
	"dealer_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles = "/vehicles"
	PathVIN      = "/vin"
)

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler, mediaHandler *handlers.MediaHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", inventoryHandler.CreateVehicle)
		vehicles.GET("", inventoryHandler.SearchVehicles)
		vehicles.GET("/:stock", inventoryHandler.GetVehicle)
		vehicles.PUT("/:stock", inventoryHandler.UpdateVehicle)

		vehicles.GET("/:stock/costs", inventoryHandler.ListCosts)
		vehicles.POST("/:stock/costs", inventoryHandler.AddCost)
		vehicles.GET("/:stock/purchase", inventoryHandler.GetPurchase)
		vehicles.PUT("/:stock/purchase", inventoryHandler.SavePurchase)
		vehicles.GET("/:stock/warranty", inventoryHandler.GetWarranty)
		vehicles.PUT("/:stock/warranty", inventoryHandler.SaveWarranty)

		if mediaHandler != nil {
			vehicles.GET("/:stock/files", mediaHandler.ListFiles)
			vehicles.POST("/:stock/files", mediaHandler.UploadFile)
			vehicles.DELETE("/:stock/files/:id", mediaHandler.DeleteFile)
			vehicles.POST("/:stock/images/generate", mediaHandler.GenerateImages)
		}
	}

	vin := rg.Group(PathVIN)
	{
		vin.POST("/decode", inventoryHandler.DecodeVIN)
	}
}
