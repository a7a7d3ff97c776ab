// internal/models/store.go
package models

type Store struct {
	BaseModel
	Name   string `json:"name" gorm:"size:255;not null"`
	UserID string `json:"userId" gorm:"size:255;not null;index"`
}

type Billboard struct {
	BaseModel
	StoreID  string `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Label    string `json:"label" gorm:"size:255;not null"`
	ImageURL string `json:"imageUrl" gorm:"type:text;not null"`
}

type Category struct {
	BaseModel
	StoreID     string `json:"storeId" gorm:"type:varchar(36);not null;index"`
	BillboardID string `json:"billboardId" gorm:"type:varchar(36);not null;index"`
	Name        string `json:"name" gorm:"size:255;not null"`

	// Relationships
	Billboard *Billboard `json:"billboard,omitempty" gorm:"foreignKey:BillboardID"`
}

type Size struct {
	BaseModel
	StoreID string `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Value   string `json:"value" gorm:"size:255;not null"`
}

type Color struct {
	BaseModel
	StoreID string `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Value   string `json:"value" gorm:"size:255;not null"`
}
