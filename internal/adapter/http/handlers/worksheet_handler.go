package handlers

import (
	"net/http"

	request "dealer_backoffice/internal/adapter/http/dto/request"
	response "dealer_backoffice/internal/adapter/http/dto/response"
	"dealer_backoffice/internal/domain/worksheet"

	"github.com/gin-gonic/gin"
)

// CalculateWorksheet godoc
// @Summary Preview worksheet totals
// @Description Pure calculation; unparsable amounts count as zero and nothing is stored.
// @Tags worksheets
// @Accept json
// @Produce json
// @Param payload body request.WorksheetCalculateRequest true "Worksheet"
// @Success 200 {object} response.WorksheetTotalsResponse
// @Router /worksheets/calculate [post]
func CalculateWorksheet(c *gin.Context) {
	var payload request.WorksheetCalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	dealType := payload.ResolveDealType()
	c.JSON(http.StatusOK, response.WorksheetTotalsResponse{
		DealType: string(dealType),
		Totals:   worksheet.Calculate(payload.Worksheet, dealType),
	})
}
