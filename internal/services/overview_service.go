// internal/services/overview_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type OverviewService struct {
	db     *gorm.DB
	stores *StoreService
}

type GraphPoint struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type Overview struct {
	TotalRevenue float64      `json:"totalRevenue"`
	SalesCount   int64        `json:"salesCount"`
	StockCount   int64        `json:"stockCount"`
	Graph        []GraphPoint `json:"graph"`
}

type monthlyRevenue struct {
	Month int
	Total decimal.Decimal
}

func NewOverviewService(db *gorm.DB, stores *StoreService) *OverviewService {
	return &OverviewService{db: db, stores: stores}
}

// GetOverview summarises paid sales and live stock for the store owner.
// Revenue is bucketed by the calendar month the order was placed in.
func (s *OverviewService) GetOverview(ctx context.Context, userID, storeID string) (*Overview, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID}); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var monthly []monthlyRevenue
	if err := db.Table("order_items").
		Select("CAST(EXTRACT(MONTH FROM orders.created_at) AS INTEGER) AS month, SUM(products.price) AS total").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.store_id = ? AND orders.is_paid = ?", storeID, true).
		Group("month").
		Scan(&monthly).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	var salesCount int64
	if err := db.Model(&models.Order{}).
		Where("store_id = ? AND is_paid = ?", storeID, true).
		Count(&salesCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	var stockCount int64
	if err := db.Model(&models.Product{}).
		Where("store_id = ? AND is_archived = ?", storeID, false).
		Count(&stockCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count stock: %w", err)
	}

	graph, revenue := buildGraph(monthly)
	return &Overview{
		TotalRevenue: revenue.InexactFloat64(),
		SalesCount:   salesCount,
		StockCount:   stockCount,
		Graph:        graph,
	}, nil
}

// buildGraph spreads monthly totals over all twelve months, Jan first.
func buildGraph(monthly []monthlyRevenue) ([]GraphPoint, decimal.Decimal) {
	totals := make([]decimal.Decimal, 12)
	revenue := decimal.Zero
	for _, m := range monthly {
		if m.Month < 1 || m.Month > 12 {
			continue
		}
		totals[m.Month-1] = totals[m.Month-1].Add(m.Total)
		revenue = revenue.Add(m.Total)
	}

	graph := make([]GraphPoint, 12)
	for i := range graph {
		graph[i] = GraphPoint{
			Name:  time.Month(i + 1).String()[:3],
			Total: totals[i].InexactFloat64(),
		}
	}
	return graph, revenue
}
