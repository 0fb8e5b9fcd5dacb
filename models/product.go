package models

import (
	"time"

	"github.com/google/uuid"
)

// Category slugs match the storefront's catalog pages.
const (
	CategoryHomePrinters   = "home-printers"
	CategoryOfficePrinters = "office-printers"
	CategoryInkjetPrinters = "inkjet-printers"
	CategoryLaserPrinters  = "laser-printers"
	CategoryInkTonerPaper  = "ink-toner-paper"
)

// Categories lists every valid category slug.
var Categories = []string{
	CategoryHomePrinters,
	CategoryOfficePrinters,
	CategoryInkjetPrinters,
	CategoryLaserPrinters,
	CategoryInkTonerPaper,
}

func IsValidCategory(slug string) bool {
	for _, c := range Categories {
		if c == slug {
			return true
		}
	}
	return false
}

type Product struct {
	ID             uuid.UUID  `json:"id" bson:"_id"`
	Title          string     `json:"title" bson:"title"`
	Price          float64    `json:"price" bson:"price"`
	CompareAtPrice float64    `json:"compare_at_price,omitempty" bson:"compare_at_price,omitempty"`
	Category       string     `json:"category" bson:"category"`
	Images         []string   `json:"images" bson:"images"`
	Stock          int        `json:"stock" bson:"stock"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
	DeletedAt      *time.Time `json:"-" bson:"deleted_at,omitempty"`
}
