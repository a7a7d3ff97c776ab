// internal/services/billboard_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type BillboardService struct {
	db     *gorm.DB
	stores *StoreService
}

type BillboardRequest struct {
	Label    string `json:"label" validate:"required" msg:"label is required"`
	ImageURL string `json:"imageUrl" validate:"required" msg:"image url is required"`
}

func NewBillboardService(db *gorm.DB, stores *StoreService) *BillboardService {
	return &BillboardService{db: db, stores: stores}
}

func (s *BillboardService) CreateBillboard(ctx context.Context, userID, storeID string, req *BillboardRequest) (*models.Billboard, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req}); err != nil {
		return nil, err
	}

	billboard := &models.Billboard{
		StoreID:  storeID,
		Label:    req.Label,
		ImageURL: req.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(billboard).Error; err != nil {
		return nil, fmt.Errorf("failed to create billboard: %w", err)
	}

	return billboard, nil
}

func (s *BillboardService) ListBillboards(ctx context.Context, storeID string) ([]models.Billboard, error) {
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	billboards := []models.Billboard{}
	if err := s.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&billboards).Error; err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}

	return billboards, nil
}

func (s *BillboardService) GetBillboard(ctx context.Context, storeID, billboardID string) (*models.Billboard, error) {
	if billboardID == "" {
		return nil, invalid("billboard id is required")
	}

	var billboard models.Billboard
	if err := getScoped(ctx, s.db, &billboard, storeID, billboardID); err != nil {
		return nil, err
	}
	return &billboard, nil
}

func (s *BillboardService) UpdateBillboard(ctx context.Context, userID, storeID, billboardID string, req *BillboardRequest) (*models.Billboard, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req, idName: "billboard", id: billboardID}); err != nil {
		return nil, err
	}

	var billboard models.Billboard
	if err := updateScoped(ctx, s.db, &billboard, storeID, billboardID, map[string]interface{}{
		"label":     req.Label,
		"image_url": req.ImageURL,
	}); err != nil {
		return nil, err
	}

	return &billboard, nil
}

func (s *BillboardService) DeleteBillboard(ctx context.Context, userID, storeID, billboardID string) error {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, idName: "billboard", id: billboardID}); err != nil {
		return err
	}

	return deleteUnreferenced(ctx, s.db, &models.Billboard{}, storeID, billboardID,
		reference{model: &models.Category{}, column: "billboard_id"})
}
