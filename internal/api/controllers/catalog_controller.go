package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

// CatalogController serves the active-only pickers for clients and the full
// CRUD surface for admins.
type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (ct *CatalogController) ListPackages(c *gin.Context) {
	pkgs, err := ct.catalogService.ListPackages(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkgs, "")
}

func (ct *CatalogController) ListTrainers(c *gin.Context) {
	trainers, err := ct.catalogService.ListTrainers(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trainers, "")
}

// ---- Admin surface ----

func (ct *CatalogController) AdminListPackages(c *gin.Context) {
	pkgs, err := ct.catalogService.ListPackages(c.Request.Context(), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkgs, "")
}

func (ct *CatalogController) CreatePackage(c *gin.Context) {
	var req request_models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ct.catalogService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Package created")
}

func (ct *CatalogController) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ct.catalogService.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Package updated")
}

func (ct *CatalogController) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ct.catalogService.DeactivatePackage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Package deactivated")
}

func (ct *CatalogController) AdminListTrainers(c *gin.Context) {
	trainers, err := ct.catalogService.ListTrainers(c.Request.Context(), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trainers, "")
}

func (ct *CatalogController) CreateTrainer(c *gin.Context) {
	var req request_models.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ct.catalogService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Trainer created")
}

func (ct *CatalogController) UpdateTrainer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ct.catalogService.UpdateTrainer(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Trainer updated")
}

func (ct *CatalogController) DeleteTrainer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ct.catalogService.DeactivateTrainer(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trainer deactivated")
}
