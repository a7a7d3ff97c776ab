// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/:storeId/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter := services.ProductFilter{
		CategoryID: c.Query("categoryId"),
		ColorID:    c.Query("colorId"),
		SizeID:     c.Query("sizeId"),
		// Any value counts, including "false".
		FeaturedOnly: c.Query("isFeatured") != "",
	}

	products, err := h.productService.ListProducts(c.Request.Context(), c.Param("storeId"), filter)
	if err != nil {
		respondError(c, "[PRODUCTS_GET]", "Product", err)
		return
	}

	utils.JSONResponse(c, products)
}

// POST /api/:storeId/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, c.Param("storeId"), &req)
	if err != nil {
		respondError(c, "[PRODUCT_POST]", "Product", err)
		return
	}

	utils.JSONResponse(c, product)
}

// GET /api/:storeId/products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("storeId"), c.Param("productId"))
	if err != nil {
		respondError(c, "[PRODUCT_GET]", "Product", err)
		return
	}

	utils.JSONResponse(c, product)
}

// PATCH /api/:storeId/products/:productId
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), userID, c.Param("storeId"), c.Param("productId"), &req)
	if err != nil {
		respondError(c, "[PRODUCT_PATCH]", "Product", err)
		return
	}

	utils.JSONResponse(c, product)
}

// DELETE /api/:storeId/products/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	productID := c.Param("productId")
	if err := h.productService.DeleteProduct(c.Request.Context(), userID, c.Param("storeId"), productID); err != nil {
		respondError(c, "[PRODUCT_DELETE]", "Product", err)
		return
	}

	deleted(c, productID)
}
