// internal/handlers/color.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type ColorHandler struct {
	colorService *services.ColorService
}

func NewColorHandler(colorService *services.ColorService) *ColorHandler {
	return &ColorHandler{colorService: colorService}
}

// POST /api/:storeId/colors
func (h *ColorHandler) CreateColor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.ColorRequest
	if !bindJSON(c, &req) {
		return
	}

	color, err := h.colorService.CreateColor(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[COLOR_POST]", "Color", err)
		return
	}

	utils.JSONResponse(c, color)
}

// GET /api/:storeId/colors
func (h *ColorHandler) GetColors(c *gin.Context) {
	colors, err := h.colorService.ListColors(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "[COLORS_GET]", "Color", err)
		return
	}

	utils.JSONResponse(c, colors)
}

// GET /api/:storeId/colors/:colorId
func (h *ColorHandler) GetColor(c *gin.Context) {
	color, err := h.colorService.GetColor(c.Request.Context(), c.Param("storeId"), c.Param("colorId"))
	if err != nil {
		respondError(c, "[COLOR_GET]", "Color", err)
		return
	}

	utils.JSONResponse(c, color)
}

// PATCH /api/:storeId/colors/:colorId
func (h *ColorHandler) UpdateColor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.ColorRequest
	if !bindJSON(c, &req) {
		return
	}

	color, err := h.colorService.UpdateColor(c.Request.Context(), userID, c.Param("storeId"), c.Param("colorId"), &req)
	if err != nil {
		respondError(c, "[COLOR_PATCH]", "Color", err)
		return
	}

	utils.JSONResponse(c, color)
}

// DELETE /api/:storeId/colors/:colorId
func (h *ColorHandler) DeleteColor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id := c.Param("colorId")
	if err := h.colorService.DeleteColor(c.Request.Context(), userID, c.Param("storeId"), id); err != nil {
		respondError(c, "[COLOR_DELETE]", "Color", err)
		return
	}

	deleted(c, id)
}
