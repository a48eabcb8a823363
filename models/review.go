package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewType tags a review's origin: submitted by a shopper or seeded with
// the catalog.
type ReviewType string

const (
	ReviewTypeUser   ReviewType = "user"
	ReviewTypeSeeded ReviewType = "seeded"
)

// Review is an append-only product review. There are no update or delete
// operations; reads return newest first.
type Review struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	Author    string     `json:"author" gorm:"not null"`
	Rating    int        `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title     *string    `json:"title,omitempty"`
	Text      string     `json:"text" gorm:"not null"`
	DateLabel string     `json:"date" gorm:"column:date_label;not null"`
	Type      ReviewType `json:"type" gorm:"type:varchar(10);not null;default:'user'"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime;index:idx_reviews_created,sort:desc"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

// AddReviewRequest is the storefront review submission payload.
type AddReviewRequest struct {
	Author string  `json:"author" binding:"required"`
	Rating int     `json:"rating" binding:"required,min=1,max=5"`
	Title  *string `json:"title"`
	Text   string  `json:"text" binding:"required"`
}
