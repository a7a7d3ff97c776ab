// internal/handlers/store.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// POST /api/stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, "[STORES_POST]", "Store", err)
		return
	}

	utils.JSONResponse(c, store)
}

// GET /api/stores
func (h *StoreHandler) GetStores(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "[STORES_GET]", "Store", err)
		return
	}

	utils.JSONResponse(c, stores)
}

// GET /api/stores/:storeId
func (h *StoreHandler) GetStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), userID, c.Param("storeId"))
	if err != nil {
		respondError(c, "[STORE_GET]", "Store", err)
		return
	}

	utils.JSONResponse(c, store)
}

// PATCH /api/stores/:storeId
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[STORE_PATCH]", "Store", err)
		return
	}

	utils.JSONResponse(c, store)
}

// DELETE /api/stores/:storeId
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	store, err := h.storeService.DeleteStore(c.Request.Context(), userID, c.Param("storeId"))
	if err != nil {
		respondError(c, "[STORE_DELETE]", "Store", err)
		return
	}

	deleted(c, store.ID)
}
