// internal/handlers/order.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

// webhookBodyLimit mirrors the limit Stripe documents for event payloads.
const webhookBodyLimit = 65536

type OrderHandler struct {
	orderService    *services.OrderService
	checkoutService *services.CheckoutService
}

func NewOrderHandler(orderService *services.OrderService, checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
	}
}

// GET /api/:storeId/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID, c.Param("storeId"))
	if err != nil {
		respondError(c, "[ORDERS_GET]", "Order", err)
		return
	}

	utils.JSONResponse(c, orders)
}

// POST /api/:storeId/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		// None of the requested products can be sold from this store.
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Products")
			return
		}
		respondError(c, "[CHECKOUT_POST]", "Order", err)
		return
	}

	utils.JSONResponse(c, resp)
}

// POST /api/webhook
func (h *OrderHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.checkoutService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, "[WEBHOOK_POST]", "Order", err)
		return
	}

	c.Status(http.StatusOK)
}
