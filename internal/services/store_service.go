// internal/services/store_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/database"
	"github.com/javajoker/store-admin/internal/models"
	"github.com/javajoker/store-admin/internal/utils"
)

type StoreService struct {
	db *gorm.DB
}

type StoreRequest struct {
	Name string `json:"name" validate:"required" msg:"name is required"`
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// Authorize returns the store when userID owns it. Unknown stores and stores
// owned by someone else are indistinguishable to the caller.
func (s *StoreService) Authorize(ctx context.Context, userID, storeID string) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	var store models.Store
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", storeID, userID).
		First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	return &store, nil
}

func (s *StoreService) CreateStore(ctx context.Context, userID string, req *StoreRequest) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if msg := utils.FirstValidationMessage(req); msg != "" {
		return nil, invalid(msg)
	}

	store := &models.Store{Name: req.Name, UserID: userID}
	if err := s.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (s *StoreService) ListStores(ctx context.Context, userID string) ([]models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	stores := []models.Store{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return stores, nil
}

func (s *StoreService) GetStore(ctx context.Context, userID, storeID string) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	store, err := s.Authorize(ctx, userID, storeID)
	if errors.Is(err, ErrForbidden) {
		return nil, ErrNotFound
	}
	return store, err
}

func (s *StoreService) UpdateStore(ctx context.Context, userID, storeID string, req *StoreRequest) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if msg := utils.FirstValidationMessage(req); msg != "" {
		return nil, invalid(msg)
	}
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	store, err := s.Authorize(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(store).Update("name", req.Name).Error; err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	return store, nil
}

func (s *StoreService) DeleteStore(ctx context.Context, userID, storeID string) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	store, err := s.Authorize(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	// Stores are only removable once emptied, matching the dashboard flow.
	err = database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Product{}, &models.Category{}, &models.Billboard{}, &models.Size{}, &models.Color{}, &models.Order{}} {
			if err := ensureUnused(ctx, tx, model, "store_id", store.ID); err != nil {
				return err
			}
		}
		if err := tx.Delete(store).Error; err != nil {
			return fmt.Errorf("failed to delete store: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}
