// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. Ids are generated by the application so that
// any store id supplied by a caller can be compared without a cast.
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All returns every model in dependency order for migrations.
func All() []interface{} {
	return []interface{}{
		&Store{},
		&Billboard{},
		&Category{},
		&Size{},
		&Color{},
		&Product{},
		&Image{},
		&Order{},
		&OrderItem{},
	}
}
