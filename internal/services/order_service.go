// internal/services/order_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type OrderService struct {
	db     *gorm.DB
	stores *StoreService
}

func NewOrderService(db *gorm.DB, stores *StoreService) *OrderService {
	return &OrderService{db: db, stores: stores}
}

// ListOrders returns the store's orders, newest first, each with its items and
// their products. Only the store owner may list them.
func (s *OrderService) ListOrders(ctx context.Context, userID, storeID string) ([]models.Order, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID}); err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := s.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
