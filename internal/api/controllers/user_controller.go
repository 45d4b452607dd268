package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"falgoritma/internal/models/request_models"
	"falgoritma/internal/services"
	"falgoritma/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CompleteOnboarding godoc
// @Summary Complete first-time profile setup
// @Description Sets profile fields and grants the signup credit bonus, once
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.OnboardingRequest true "Onboarding payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/onboarding [post]
func (u *UserController) CompleteOnboarding(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := u.userService.CompleteOnboarding(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Onboarding completed successfully")
}

// GetProfile godoc
// @Summary Fetch the current profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (u *UserController) GetProfile(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := u.userService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update relationship status and profession
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [patch]
func (u *UserController) UpdateProfile(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := u.userService.UpdateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Profile updated successfully")
}
