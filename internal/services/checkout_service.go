// internal/services/checkout_service.go
package services

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/config"
	"github.com/javajoker/store-admin/internal/database"
	"github.com/javajoker/store-admin/internal/models"
	"github.com/javajoker/store-admin/internal/utils"
)

type CheckoutService struct {
	db       *gorm.DB
	gateway  PaymentGateway
	storeURL string
	currency string
}

type CheckoutRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1" msg:"Product ids are required"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

func NewCheckoutService(db *gorm.DB, gateway PaymentGateway, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		db:       db,
		gateway:  gateway,
		storeURL: cfg.Frontend.StoreURL,
		currency: cfg.Payment.Currency,
	}
}

// Checkout opens an unpaid order for the requested products and returns the
// hosted payment page the shopper is sent to.
func (s *CheckoutService) Checkout(ctx context.Context, storeID string, req *CheckoutRequest) (*CheckoutResponse, error) {
	if msg := utils.FirstValidationMessage(req); msg != "" {
		return nil, invalid(msg)
	}
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("store_id = ? AND id = ANY(?) AND is_archived = ?", storeID, pq.Array(req.ProductIDs), false).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}

	order := &models.Order{StoreID: storeID}
	items := make([]LineItem, 0, len(products))
	for _, product := range products {
		order.OrderItems = append(order.OrderItems, models.OrderItem{ProductID: product.ID})
		items = append(items, LineItem{
			Name:       product.Name,
			UnitAmount: product.Price.Mul(decimal.NewFromInt(100)).IntPart(),
		})
	}

	// The order only survives when a payment session exists for it.
	var url string
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		var err error
		url, err = s.gateway.CreateCheckoutSession(CheckoutSessionParams{
			OrderID:    order.ID,
			Currency:   s.currency,
			Items:      items,
			SuccessURL: s.storeURL + "/cart?success=1",
			CancelURL:  s.storeURL + "/cart?canceled=1",
		})
		if err != nil {
			return fmt.Errorf("failed to create checkout session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResponse{URL: url}, nil
}

// HandleWebhook settles a completed checkout: the order becomes paid with the
// shopper's contact details and its products leave the catalogue. Other events
// are acknowledged without side effects.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return invalid("Webhook Error: " + err.Error())
	}
	if !event.Completed() {
		return nil
	}
	if event.OrderID == "" {
		return invalid("Webhook Error: missing order id")
	}

	return database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ?", event.OrderID).
			Updates(map[string]interface{}{
				"is_paid": true,
				"address": event.Address,
				"phone":   event.Phone,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark order paid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		var productIDs []string
		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ?", event.OrderID).
			Pluck("product_id", &productIDs).Error; err != nil {
			return fmt.Errorf("failed to load order items: %w", err)
		}
		if len(productIDs) == 0 {
			return nil
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ANY(?)", pq.Array(productIDs)).
			Update("is_archived", true).Error; err != nil {
			return fmt.Errorf("failed to archive products: %w", err)
		}
		return nil
	})
}
