package api

import (
	"net/http"

	"github.com/drizz21/rental-tes/internal/service/vehicles"
	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	service vehicles.VehicleUseCase
}

func NewStatisticsHandler(service vehicles.VehicleUseCase) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

func (h *StatisticsHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.statistics)
}

func (h *StatisticsHandler) statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
