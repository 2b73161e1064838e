package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type PurchaseController struct {
	purchaseService services.PurchaseServiceInterface
}

func NewPurchaseController(purchaseService services.PurchaseServiceInterface) *PurchaseController {
	return &PurchaseController{purchaseService: purchaseService}
}

// Create godoc
// @Summary Log a purchase
// @Description Create a purchase from a catalog package or explicit fields
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body request_models.CreatePurchaseRequest true "Purchase payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /purchases [post]
func (p *PurchaseController) Create(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.purchaseService.CreatePurchase(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchase logged")
}

// History godoc
// @Summary Purchase history
// @Description Purchases visible to the caller, optionally bounded by start/end (RFC3339)
// @Tags Purchases
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /purchases [get]
func (p *PurchaseController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	start, end, err := utils.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start/end timestamp")
		return
	}

	resp, err := p.purchaseService.History(c.Request.Context(), accountID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

func (p *PurchaseController) Update(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	purchaseID, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.purchaseService.UpdatePurchase(c.Request.Context(), accountID, purchaseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchase updated")
}

func (p *PurchaseController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	purchaseID, ok := pathID(c)
	if !ok {
		return
	}

	if err := p.purchaseService.DeletePurchase(c.Request.Context(), accountID, purchaseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Purchase deleted")
}
