// internal/services/color_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type ColorService struct {
	db     *gorm.DB
	stores *StoreService
}

type ColorRequest struct {
	Name  string `json:"name" validate:"required" msg:"name is required"`
	Value string `json:"value" validate:"required" msg:"value is required"`
}

func NewColorService(db *gorm.DB, stores *StoreService) *ColorService {
	return &ColorService{db: db, stores: stores}
}

func (s *ColorService) CreateColor(ctx context.Context, userID, storeID string, req *ColorRequest) (*models.Color, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req}); err != nil {
		return nil, err
	}

	color := &models.Color{
		StoreID: storeID,
		Name:    req.Name,
		Value:   req.Value,
	}
	if err := s.db.WithContext(ctx).Create(color).Error; err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}

	return color, nil
}

func (s *ColorService) ListColors(ctx context.Context, storeID string) ([]models.Color, error) {
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	colors := []models.Color{}
	if err := s.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}

	return colors, nil
}

func (s *ColorService) GetColor(ctx context.Context, storeID, colorID string) (*models.Color, error) {
	if colorID == "" {
		return nil, invalid("color id is required")
	}

	var color models.Color
	if err := getScoped(ctx, s.db, &color, storeID, colorID); err != nil {
		return nil, err
	}
	return &color, nil
}

func (s *ColorService) UpdateColor(ctx context.Context, userID, storeID, colorID string, req *ColorRequest) (*models.Color, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req, idName: "color", id: colorID}); err != nil {
		return nil, err
	}

	var color models.Color
	if err := updateScoped(ctx, s.db, &color, storeID, colorID, map[string]interface{}{
		"name":  req.Name,
		"value": req.Value,
	}); err != nil {
		return nil, err
	}

	return &color, nil
}

func (s *ColorService) DeleteColor(ctx context.Context, userID, storeID, colorID string) error {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, idName: "color", id: colorID}); err != nil {
		return err
	}

	return deleteUnreferenced(ctx, s.db, &models.Color{}, storeID, colorID,
		reference{model: &models.Product{}, column: "color_id"})
}
