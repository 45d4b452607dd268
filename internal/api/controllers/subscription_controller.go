package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"falgoritma/internal/models/request_models"
	"falgoritma/internal/services"
	"falgoritma/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// GetPlans godoc
// @Summary List subscription plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/plans [get]
func (sc *SubscriptionController) GetPlans(c *gin.Context) {
	utils.RespondSuccess(c, sc.subscriptionService.GetPlans(), "Plans fetched successfully")
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.SubscribeRequest true "Subscribe payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/subscribe [post]
func (sc *SubscriptionController) Subscribe(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := sc.subscriptionService.Subscribe(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Subscribed successfully")
}

// GetStatus godoc
// @Summary Premium and subscription status
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/status [get]
func (sc *SubscriptionController) GetStatus(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := sc.subscriptionService.GetStatus(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Status fetched successfully")
}

// Cancel godoc
// @Summary Cancel the active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/cancel [post]
func (sc *SubscriptionController) Cancel(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	if err := sc.subscriptionService.Cancel(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription cancelled successfully")
}
