// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// POST /api/:storeId/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[CATEGORY_POST]", "Category", err)
		return
	}

	utils.JSONResponse(c, category)
}

// GET /api/:storeId/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "[CATEGORIES_GET]", "Category", err)
		return
	}

	utils.JSONResponse(c, categories)
}

// GET /api/:storeId/categories/:categoryId
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("storeId"), c.Param("categoryId"))
	if err != nil {
		respondError(c, "[CATEGORY_GET]", "Category", err)
		return
	}

	utils.JSONResponse(c, category)
}

// PATCH /api/:storeId/categories/:categoryId
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, c.Param("storeId"), c.Param("categoryId"), &req)
	if err != nil {
		respondError(c, "[CATEGORY_PATCH]", "Category", err)
		return
	}

	utils.JSONResponse(c, category)
}

// DELETE /api/:storeId/categories/:categoryId
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id := c.Param("categoryId")
	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, c.Param("storeId"), id); err != nil {
		respondError(c, "[CATEGORY_DELETE]", "Category", err)
		return
	}

	deleted(c, id)
}
