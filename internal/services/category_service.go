// internal/services/category_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/models"
)

type CategoryService struct {
	db     *gorm.DB
	stores *StoreService
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required" msg:"name is required"`
	BillboardID string `json:"billboardId" validate:"required" msg:"billboard id is required"`
}

func NewCategoryService(db *gorm.DB, stores *StoreService) *CategoryService {
	return &CategoryService{db: db, stores: stores}
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID, storeID string, req *CategoryRequest) (*models.Category, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req}); err != nil {
		return nil, err
	}

	category := &models.Category{
		StoreID:     storeID,
		BillboardID: req.BillboardID,
		Name:        req.Name,
	}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	categories := []models.Category{}
	if err := s.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, storeID, categoryID string) (*models.Category, error) {
	if categoryID == "" {
		return nil, invalid("category id is required")
	}

	var category models.Category
	if err := getScoped(ctx, s.db.Preload("Billboard"), &category, storeID, categoryID); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, userID, storeID, categoryID string, req *CategoryRequest) (*models.Category, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req, idName: "category", id: categoryID}); err != nil {
		return nil, err
	}

	var category models.Category
	if err := updateScoped(ctx, s.db, &category, storeID, categoryID, map[string]interface{}{
		"name":         req.Name,
		"billboard_id": req.BillboardID,
	}); err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, userID, storeID, categoryID string) error {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, idName: "category", id: categoryID}); err != nil {
		return err
	}

	return deleteUnreferenced(ctx, s.db, &models.Category{}, storeID, categoryID,
		reference{model: &models.Product{}, column: "category_id"})
}
