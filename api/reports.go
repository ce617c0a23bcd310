package api

import (
	"net/http"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/service/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service report.ReportUseCase
}

func NewReportHandler(service report.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.revenue)
}

func (h *ReportHandler) revenue(c *gin.Context) {
	periode := c.DefaultQuery("periode", domain.PeriodDay)

	laporan, err := h.service.Revenue(c.Request.Context(), periode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, laporan)
}
