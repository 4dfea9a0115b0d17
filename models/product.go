package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Sort        int       `gorm:"column:sort;default:0" json:"sort"`
	CategoryID  uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Slug        string    `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Image       *string   `gorm:"size:255" json:"image,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Status      bool      `gorm:"default:true" json:"status"`
	View        uint      `gorm:"column:view;default:0" json:"view"`
	Sold        uint      `gorm:"column:sold;default:0" json:"sold"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
