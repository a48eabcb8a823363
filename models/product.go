package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the closed set of catalog departments. CategoryAll is a
// filter sentinel only and is never stored on a product.
type Category string

const (
	CategoryAll             Category = "All"
	CategoryPharmaceuticals Category = "Pharmaceuticals"
	CategoryEquipment       Category = "Medical Equipment"
	CategorySupplies        Category = "First Aid & Supplies"
	CategoryWellness        Category = "Wellness & Vitamins"
)

// StorableCategories lists every category a product may carry.
var StorableCategories = []Category{
	CategoryPharmaceuticals,
	CategoryEquipment,
	CategorySupplies,
	CategoryWellness,
}

// IsStorable reports whether c is a real department (not the All sentinel).
func (c Category) IsStorable() bool {
	for _, v := range StorableCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategory maps a raw query/body value onto the enum. Unknown values
// fall back to the All sentinel so a bad filter widens rather than errors.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.IsStorable() {
		return c
	}
	return CategoryAll
}

// FeatureList is a jsonb-backed list of feature tags.
type FeatureList []string

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = make(FeatureList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FeatureList")
	}
	return json.Unmarshal(bytes, f)
}

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f)
}

// Product is the catalog entity. Immutable from the storefront; mutated
// only through the admin product endpoints.
type Product struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string      `json:"name" gorm:"not null;index"`
	Description string      `json:"description" gorm:"not null"`
	Brand       string      `json:"brand" gorm:"not null;index"`
	Category    Category    `json:"category" gorm:"type:varchar(50);not null;index"`
	Image       string      `json:"image" gorm:"not null"`
	Price       float64     `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Rating      float64     `json:"rating" gorm:"type:numeric(3,1);not null;default:0"`
	Reviews     int         `json:"reviews" gorm:"not null;default:0"`
	InStock     bool        `json:"inStock" gorm:"column:in_stock;not null;default:true;index"`
	Features    FeatureList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ProductRequest is the admin create payload. Rating and review count are
// never client-supplied; a new product always starts at zero.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required" example:"Digital Stethoscope Pro"`
	Description string   `json:"description" binding:"required"`
	Brand       string   `json:"brand" binding:"required" example:"MediTech"`
	Category    Category `json:"category" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Price       float64  `json:"price" binding:"required,min=0" example:"299.99"`
	InStock     *bool    `json:"inStock"`
	Features    []string `json:"features"`
}

// UpdateProductRequest performs a shallow field merge: only non-nil fields
// overwrite the stored product.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Brand       *string   `json:"brand"`
	Category    *Category `json:"category"`
	Image       *string   `json:"image"`
	Price       *float64  `json:"price" binding:"omitempty,min=0"`
	InStock     *bool     `json:"inStock"`
	Features    *[]string `json:"features"`
}

// ApplyTo merges the patch into p.
func (r UpdateProductRequest) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Features != nil {
		p.Features = FeatureList(*r.Features)
	}
}
