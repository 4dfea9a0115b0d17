package models

import "time"

type Bank struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"size:50;not null" json:"type"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	NeedLogin     bool      `gorm:"column:need_login;default:false" json:"need_login"`
	FeesKind      string    `gorm:"column:fees_percent_amount;type:enum('percent','fixed');default:'percent'" json:"fees_percent_amount"`
	Fees          float64   `gorm:"type:decimal(15,2);default:0" json:"fees"`
	MinPrice      float64   `gorm:"column:min_price;type:decimal(15,2);default:0" json:"min_price"`
	Minimum       float64   `gorm:"type:decimal(15,2);default:0" json:"minimum"`
	Image         *string   `gorm:"size:255" json:"image,omitempty"`
	Icon          *string   `gorm:"size:255" json:"icon,omitempty"`
	InvertIcon    bool      `gorm:"column:invert_icon;default:false" json:"invert_icon"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Bank) TableName() string {
	return "banks"
}
