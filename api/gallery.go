package api

import (
	"net/http"

	"github.com/drizz21/rental-tes/internal/service/gallery"
	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	service gallery.GalleryUseCase
}

func NewGalleryHandler(service gallery.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *GalleryHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) create(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
