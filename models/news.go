package models

import "time"

type News struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Slug          string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Image         *string   `gorm:"size:255" json:"image,omitempty"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	PriceReseller *float64  `gorm:"column:price_reseller;type:decimal(15,2)" json:"price_reseller,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
