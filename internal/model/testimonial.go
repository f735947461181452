package model

import "time"

// Testimonial is a user-authored review attached to at most one project or
// product. The composite unique indexes enforce one testimonial per
// (author, project) and one per (author, product); rows with a NULL reference
// never collide with each other.
type Testimonial struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AuthorID uint `gorm:"not null;uniqueIndex:uk_author_project;uniqueIndex:uk_author_product" json:"author"`

	// Display overrides so the author reference doesn't have to be resolved.
	AuthorNameOverride    string `gorm:"type:varchar(128)" json:"authorNameOverride,omitempty"`
	AuthorRoleOverride    string `gorm:"type:varchar(128)" json:"authorRoleOverride,omitempty"`
	AuthorCompanyOverride string `gorm:"type:varchar(128)" json:"authorCompanyOverride,omitempty"`
	AuthorAvatarOverride  string `gorm:"type:varchar(512)" json:"authorAvatarOverride,omitempty"`

	Title   string `gorm:"type:varchar(256)" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Rating  int    `gorm:"default:5" json:"rating"`

	ProjectID *uint `gorm:"uniqueIndex:uk_author_project" json:"project"`
	ProductID *uint `gorm:"uniqueIndex:uk_author_product" json:"product"`

	IsApproved bool `gorm:"default:false" json:"isApproved"`
	IsFeatured bool `gorm:"default:false" json:"isFeatured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Testimonial) TableName() string { return "testimonials" }
