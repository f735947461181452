package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(256);not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"desc"`
	Category    string `gorm:"type:varchar(128);not null" json:"category"`

	// Users with role client who use this product.
	Clients datatypes.JSONSlice[uint] `gorm:"type:json" json:"clients"`

	Videos    datatypes.JSONSlice[string] `gorm:"type:json" json:"video"`
	Images    datatypes.JSONSlice[string] `gorm:"type:json" json:"image"`
	Thumbnail string                      `gorm:"type:varchar(512)" json:"thumbnail"`

	TechStack datatypes.JSONSlice[string] `gorm:"type:json" json:"techStack"`
	FAQs      FAQList                     `gorm:"column:faqs;type:json" json:"faqs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
