package models

import (
	"strings"

	"gorm.io/gorm"
)

// Product is a hoodie in the catalogue. Admin-writable, world-readable.
type Product struct {
	gorm.Model
	Name        string   `gorm:"size:255;not null;index" json:"name"`
	Description string   `gorm:"type:text"               json:"description"`
	Price       float64  `gorm:"not null;default:0"      json:"price"`
	Sizes       []string `gorm:"serializer:json"         json:"sizes"`
	ImageURL    string   `gorm:"size:512;column:image_url" json:"image_url"`
	InStock     bool     `gorm:"default:true;column:in_stock" json:"in_stock"`
}

// ParseSizes turns a comma-separated size field into an ordered label list.
// Each entry is trimmed; order is preserved ("S, M ,L" → ["S","M","L"]).
func ParseSizes(input string) []string {
	parts := strings.Split(input, ",")
	sizes := make([]string, len(parts))
	for i, p := range parts {
		sizes[i] = strings.TrimSpace(p)
	}
	return sizes
}

// HasSize reports whether label is one of the product's sizes. Checkout
// deliberately does not call this; it exists for clients that preselect.
func (p Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}
