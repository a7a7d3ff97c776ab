// internal/handlers/overview.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type OverviewHandler struct {
	overviewService *services.OverviewService
}

func NewOverviewHandler(overviewService *services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// GET /api/:storeId/overview
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	overview, err := h.overviewService.GetOverview(c.Request.Context(), userID, c.Param("storeId"))
	if err != nil {
		respondError(c, "[OVERVIEW_GET]", "Store", err)
		return
	}

	utils.JSONResponse(c, overview)
}
