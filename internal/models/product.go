// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	StoreID    string          `json:"storeId" gorm:"type:varchar(36);not null;index"`
	CategoryID string          `json:"categoryId" gorm:"type:varchar(36);not null;index"`
	SizeID     string          `json:"sizeId" gorm:"type:varchar(36);not null;index"`
	ColorID    string          `json:"colorId" gorm:"type:varchar(36);not null;index"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsFeatured bool            `json:"isFeatured" gorm:"not null"`
	IsArchived bool            `json:"isArchived" gorm:"not null"`

	// Relationships
	Images   []Image   `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Size     *Size     `json:"size,omitempty" gorm:"foreignKey:SizeID"`
	Color    *Color    `json:"color,omitempty" gorm:"foreignKey:ColorID"`
}

type Image struct {
	BaseModel
	ProductID string `json:"productId" gorm:"type:varchar(36);not null;index"`
	URL       string `json:"url" gorm:"type:text;not null"`
}
