// internal/models/order.go
package models

type Order struct {
	BaseModel
	StoreID string `json:"storeId" gorm:"type:varchar(36);not null;index"`
	IsPaid  bool   `json:"isPaid" gorm:"not null"`
	Phone   string `json:"phone" gorm:"size:64;not null"`
	Address string `json:"address" gorm:"type:text;not null"`

	// Relationships
	OrderItems []OrderItem `json:"orderItems,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	BaseModel
	OrderID   string `json:"orderId" gorm:"type:varchar(36);not null;index"`
	ProductID string `json:"productId" gorm:"type:varchar(36);not null;index"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
