package models

import "time"

// Setting is a single-row table holding storefront configuration.
type Setting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WebsiteName  string    `gorm:"column:website_name;size:100;not null" json:"website_name"`
	WebsiteTitle string    `gorm:"column:website_title;size:200;not null" json:"website_title"`
	Logo         *string   `gorm:"size:255" json:"logo,omitempty"`
	Favicon      *string   `gorm:"size:255" json:"favicon,omitempty"`
	FaviconText  *string   `gorm:"column:favicon_text;size:100" json:"favicon_text,omitempty"`
	Taxvoice     *string   `gorm:"size:100" json:"taxvoice,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	Email        *string   `gorm:"size:100" json:"email,omitempty"`
	Whatsapp     *string   `gorm:"size:50" json:"whatsapp,omitempty"`
	Instagram    *string   `gorm:"size:100" json:"instagram,omitempty"`
	Facebook     *string   `gorm:"size:100" json:"facebook,omitempty"`
	Youtube      *string   `gorm:"size:100" json:"youtube,omitempty"`
	Twitter      *string   `gorm:"size:100" json:"twitter,omitempty"`
	Telegram     *string   `gorm:"size:100" json:"telegram,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
