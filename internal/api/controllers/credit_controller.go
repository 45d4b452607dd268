package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"falgoritma/internal/models/request_models"
	"falgoritma/internal/services"
	"falgoritma/pkg/utils"
)

type CreditController struct {
	creditService services.CreditServiceInterface
}

func NewCreditController(creditService services.CreditServiceInterface) *CreditController {
	return &CreditController{
		creditService: creditService,
	}
}

// GetPackages godoc
// @Summary List purchasable credit packages
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /credits/packages [get]
func (cc *CreditController) GetPackages(c *gin.Context) {
	utils.RespondSuccess(c, cc.creditService.GetPackages(), "Packages fetched successfully")
}

// GetBalance godoc
// @Summary Current credit balance
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/balance [get]
func (cc *CreditController) GetBalance(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := cc.creditService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Balance fetched successfully")
}

// SimulatePurchase godoc
// @Summary Credit the account for a package without real payment
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body request_models.SimulatePurchaseRequest true "Purchase payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/simulate-purchase [post]
func (cc *CreditController) SimulatePurchase(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.SimulatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := cc.creditService.SimulatePurchase(c.Request.Context(), accountID, req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchase completed successfully")
}
