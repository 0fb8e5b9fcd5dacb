package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string    `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      string    `gorm:"not null;index" json:"user_id"`

	Subtotal    float64 `gorm:"not null" json:"subtotal"`
	ShippingFee float64 `gorm:"not null" json:"shipping_fee"`
	Tax         float64 `gorm:"not null" json:"tax"`
	Total       float64 `gorm:"not null" json:"total"`

	Payment string `gorm:"type:varchar(10);not null" json:"payment"`

	ShipName        string `gorm:"not null" json:"ship_name"`
	ShipAddress     string `gorm:"not null" json:"ship_address"`
	ShipPhone       string `gorm:"not null" json:"ship_phone"`
	ShipPincode     string `gorm:"size:6;not null" json:"ship_pincode"`
	ShipAddressType string `gorm:"type:varchar(10);not null;default:'Home'" json:"ship_address_type"`

	Status    string         `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string    `gorm:"not null" json:"product_id"`
	Title     string    `gorm:"not null" json:"title"`
	UnitPrice float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}
