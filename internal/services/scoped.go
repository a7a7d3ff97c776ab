// internal/services/scoped.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/database"
	"github.com/javajoker/store-admin/internal/utils"
)

// mutation describes one write against a store-scoped resource.
type mutation struct {
	userID  string
	storeID string
	// req is the decoded body; nil for deletes.
	req interface{}
	// idName is set for updates and deletes, e.g. "product".
	idName string
	id     string
}

// check runs the shared pipeline: identity, body fields in declaration order,
// store id, resource id, then store ownership. The first failure wins.
func (s *StoreService) check(ctx context.Context, m mutation) error {
	if m.userID == "" {
		return ErrUnauthenticated
	}
	if m.req != nil {
		if msg := utils.FirstValidationMessage(m.req); msg != "" {
			return invalid(msg)
		}
	}
	if m.storeID == "" {
		return invalid("store id is required")
	}
	if m.idName != "" && m.id == "" {
		return invalid(m.idName + " id is required")
	}

	_, err := s.Authorize(ctx, m.userID, m.storeID)
	return err
}

// reference is a column of another table that points at a row.
type reference struct {
	model  interface{}
	column string
}

// ensureUnused fails with ErrInUse when any row of model has column = id.
func ensureUnused(ctx context.Context, db *gorm.DB, model interface{}, column, id string) error {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count references: %w", err)
	}
	if count > 0 {
		return ErrInUse
	}
	return nil
}

// existsScoped fails with ErrNotFound unless the row (id, storeID) exists.
func existsScoped(ctx context.Context, db *gorm.DB, model interface{}, storeID, id string) error {
	var count int64
	if err := db.WithContext(ctx).Model(model).
		Where("id = ? AND store_id = ?", id, storeID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to find: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteUnreferenced removes the row (id, storeID) in one transaction. Rows of
// other stores are ErrNotFound before any reference is counted.
func deleteUnreferenced(ctx context.Context, db *gorm.DB, model interface{}, storeID, id string, refs ...reference) error {
	return database.WithTransaction(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := existsScoped(ctx, tx, model, storeID, id); err != nil {
			return err
		}
		for _, ref := range refs {
			if err := ensureUnused(ctx, tx, ref.model, ref.column, id); err != nil {
				return err
			}
		}
		return deleteScoped(ctx, tx, model, storeID, id)
	})
}

// updateScoped applies updates to the row (id, storeID) of model's table and
// reloads it into model.
func updateScoped(ctx context.Context, db *gorm.DB, model interface{}, storeID, id string, updates map[string]interface{}) error {
	result := db.WithContext(ctx).Model(model).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(model).Error; err != nil {
		return notFoundOr(err, "failed to reload")
	}
	return nil
}

// deleteScoped removes the row (id, storeID) of model's table.
func deleteScoped(ctx context.Context, db *gorm.DB, model interface{}, storeID, id string) error {
	result := db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func getScoped(ctx context.Context, db *gorm.DB, model interface{}, storeID, id string) error {
	if err := db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(model).Error; err != nil {
		return notFoundOr(err, "failed to find")
	}
	return nil
}
