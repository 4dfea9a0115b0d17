package models

import "time"

// Variant status values.
const (
	VariantOn  = "on"
	VariantOff = "off"
	VariantOut = "out"
)

// Discount kinds. The column is named discount_percent for historical reasons:
// it holds the kind tag, not the percentage itself.
const (
	DiscountPercent = "percent"
	DiscountNominal = "nominal"
)

type ProductVariant struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Sort            int        `gorm:"column:sort;default:0" json:"sort"`
	ProductID       uint       `gorm:"column:product_id;not null;index" json:"product_id"`
	SKU             string     `gorm:"column:sku;size:50;uniqueIndex;not null" json:"sku"`
	Name            string     `gorm:"size:150;not null" json:"name"`
	Price           float64    `gorm:"type:decimal(15,2);not null" json:"price"`
	DiscountKind    string     `gorm:"column:discount_percent;type:enum('percent','nominal');default:'percent'" json:"discount_percent"`
	Discount        float64    `gorm:"type:decimal(15,2);default:0" json:"discount"`
	MinOrder        int        `gorm:"column:min_order;default:1" json:"min_order"`
	DiscountStart   *time.Time `gorm:"column:discount_start" json:"discount_start,omitempty"`
	DiscountEnd     *time.Time `gorm:"column:discount_end" json:"discount_end,omitempty"`
	Status          string     `gorm:"type:enum('on','off','out');default:'on'" json:"status"`
	Label           *string    `gorm:"size:100" json:"label,omitempty"`
	IsLabelRequired bool       `gorm:"column:is_label_required;default:false" json:"is_label_required"`
	Note            *string    `gorm:"type:text" json:"note,omitempty"`
	SellerNote      *string    `gorm:"column:seller_note;type:text" json:"seller_note,omitempty"`
	Description     *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
