// internal/handlers/size.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type SizeHandler struct {
	sizeService *services.SizeService
}

func NewSizeHandler(sizeService *services.SizeService) *SizeHandler {
	return &SizeHandler{sizeService: sizeService}
}

// POST /api/:storeId/sizes
func (h *SizeHandler) CreateSize(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.SizeRequest
	if !bindJSON(c, &req) {
		return
	}

	size, err := h.sizeService.CreateSize(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[SIZE_POST]", "Size", err)
		return
	}

	utils.JSONResponse(c, size)
}

// GET /api/:storeId/sizes
func (h *SizeHandler) GetSizes(c *gin.Context) {
	sizes, err := h.sizeService.ListSizes(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "[SIZES_GET]", "Size", err)
		return
	}

	utils.JSONResponse(c, sizes)
}

// GET /api/:storeId/sizes/:sizeId
func (h *SizeHandler) GetSize(c *gin.Context) {
	size, err := h.sizeService.GetSize(c.Request.Context(), c.Param("storeId"), c.Param("sizeId"))
	if err != nil {
		respondError(c, "[SIZE_GET]", "Size", err)
		return
	}

	utils.JSONResponse(c, size)
}

// PATCH /api/:storeId/sizes/:sizeId
func (h *SizeHandler) UpdateSize(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.SizeRequest
	if !bindJSON(c, &req) {
		return
	}

	size, err := h.sizeService.UpdateSize(c.Request.Context(), userID, c.Param("storeId"), c.Param("sizeId"), &req)
	if err != nil {
		respondError(c, "[SIZE_PATCH]", "Size", err)
		return
	}

	utils.JSONResponse(c, size)
}

// DELETE /api/:storeId/sizes/:sizeId
func (h *SizeHandler) DeleteSize(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id := c.Param("sizeId")
	if err := h.sizeService.DeleteSize(c.Request.Context(), userID, c.Param("storeId"), id); err != nil {
		respondError(c, "[SIZE_DELETE]", "Size", err)
		return
	}

	deleted(c, id)
}
