package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{reportService: reportService}
}

// Summary godoc
// @Summary Remaining sessions per duration
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /summary [get]
func (r *ReportController) Summary(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	summary, err := r.reportService.Summary(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}

// Trainers godoc
// @Summary Minutes trained per trainer in a period
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Router /reports/trainers [get]
func (r *ReportController) Trainers(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	start, end, err := utils.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start/end timestamp")
		return
	}

	rows, err := r.reportService.TrainerReport(c.Request.Context(), accountID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "")
}

// Cost godoc
// @Summary Total spend on owned purchases in a period
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Router /reports/cost [get]
func (r *ReportController) Cost(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	start, end, err := utils.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start/end timestamp")
		return
	}

	report, err := r.reportService.CostReport(c.Request.Context(), accountID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "")
}
