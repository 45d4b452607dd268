package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"falgoritma/internal/models/request_models"
	"falgoritma/internal/services"
	"falgoritma/pkg/utils"
)

type FortuneController struct {
	fortuneService services.FortuneServiceInterface
}

func NewFortuneController(fortuneService services.FortuneServiceInterface) *FortuneController {
	return &FortuneController{
		fortuneService: fortuneService,
	}
}

// CreateFortune godoc
// @Summary Create a fortune from coffee-cup photos
// @Description Costs 3 credits; the debit and the record commit together
// @Tags Fortunes
// @Accept json
// @Produce json
// @Param request body request_models.CreateFortuneRequest true "Fortune payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fortunes [post]
func (fc *FortuneController) CreateFortune(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateFortuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := fc.fortuneService.CreateFortune(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fortune created successfully")
}

// ListFortunes godoc
// @Summary List fortune summaries, newest first
// @Tags Fortunes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fortunes [get]
func (fc *FortuneController) ListFortunes(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := fc.fortuneService.ListFortunes(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fortunes fetched successfully")
}

// GetFortuneById godoc
// @Summary Fetch one fortune, owner only
// @Tags Fortunes
// @Produce json
// @Param id path string true "Fortune id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fortunes/{id} [get]
func (fc *FortuneController) GetFortuneById(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	fortuneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid fortune id")
		return
	}

	resp, err := fc.fortuneService.GetFortuneById(c.Request.Context(), accountID, fortuneID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fortune fetched successfully")
}
