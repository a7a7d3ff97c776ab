// internal/services/size_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type SizeService struct {
	db     *gorm.DB
	stores *StoreService
}

type SizeRequest struct {
	Name  string `json:"name" validate:"required" msg:"name is required"`
	Value string `json:"value" validate:"required" msg:"value is required"`
}

func NewSizeService(db *gorm.DB, stores *StoreService) *SizeService {
	return &SizeService{db: db, stores: stores}
}

func (s *SizeService) CreateSize(ctx context.Context, userID, storeID string, req *SizeRequest) (*models.Size, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req}); err != nil {
		return nil, err
	}

	size := &models.Size{
		StoreID: storeID,
		Name:    req.Name,
		Value:   req.Value,
	}
	if err := s.db.WithContext(ctx).Create(size).Error; err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}

	return size, nil
}

func (s *SizeService) ListSizes(ctx context.Context, storeID string) ([]models.Size, error) {
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	sizes := []models.Size{}
	if err := s.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}

	return sizes, nil
}

func (s *SizeService) GetSize(ctx context.Context, storeID, sizeID string) (*models.Size, error) {
	if sizeID == "" {
		return nil, invalid("size id is required")
	}

	var size models.Size
	if err := getScoped(ctx, s.db, &size, storeID, sizeID); err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *SizeService) UpdateSize(ctx context.Context, userID, storeID, sizeID string, req *SizeRequest) (*models.Size, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req, idName: "size", id: sizeID}); err != nil {
		return nil, err
	}

	var size models.Size
	if err := updateScoped(ctx, s.db, &size, storeID, sizeID, map[string]interface{}{
		"name":  req.Name,
		"value": req.Value,
	}); err != nil {
		return nil, err
	}

	return &size, nil
}

func (s *SizeService) DeleteSize(ctx context.Context, userID, storeID, sizeID string) error {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, idName: "size", id: sizeID}); err != nil {
		return err
	}

	return deleteUnreferenced(ctx, s.db, &models.Size{}, storeID, sizeID,
		reference{model: &models.Product{}, column: "size_id"})
}
