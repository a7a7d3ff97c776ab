// internal/handlers/billboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type BillboardHandler struct {
	billboardService *services.BillboardService
}

func NewBillboardHandler(billboardService *services.BillboardService) *BillboardHandler {
	return &BillboardHandler{billboardService: billboardService}
}

// POST /api/:storeId/billboards
func (h *BillboardHandler) CreateBillboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.BillboardRequest
	if !bindJSON(c, &req) {
		return
	}

	billboard, err := h.billboardService.CreateBillboard(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[BILLBOARD_POST]", "Billboard", err)
		return
	}

	utils.JSONResponse(c, billboard)
}

// GET /api/:storeId/billboards
func (h *BillboardHandler) GetBillboards(c *gin.Context) {
	billboards, err := h.billboardService.ListBillboards(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "[BILLBOARDS_GET]", "Billboard", err)
		return
	}

	utils.JSONResponse(c, billboards)
}

// GET /api/:storeId/billboards/:billboardId
func (h *BillboardHandler) GetBillboard(c *gin.Context) {
	billboard, err := h.billboardService.GetBillboard(c.Request.Context(), c.Param("storeId"), c.Param("billboardId"))
	if err != nil {
		respondError(c, "[BILLBOARD_GET]", "Billboard", err)
		return
	}

	utils.JSONResponse(c, billboard)
}

// PATCH /api/:storeId/billboards/:billboardId
func (h *BillboardHandler) UpdateBillboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.BillboardRequest
	if !bindJSON(c, &req) {
		return
	}

	billboard, err := h.billboardService.UpdateBillboard(c.Request.Context(), userID, c.Param("storeId"), c.Param("billboardId"), &req)
	if err != nil {
		respondError(c, "[BILLBOARD_PATCH]", "Billboard", err)
		return
	}

	utils.JSONResponse(c, billboard)
}

// DELETE /api/:storeId/billboards/:billboardId
func (h *BillboardHandler) DeleteBillboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id := c.Param("billboardId")
	if err := h.billboardService.DeleteBillboard(c.Request.Context(), userID, c.Param("storeId"), id); err != nil {
		respondError(c, "[BILLBOARD_DELETE]", "Billboard", err)
		return
	}

	deleted(c, id)
}
