package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectInReview  ProjectStatus = "in-review"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(256);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	CoverImage  string        `gorm:"type:varchar(512)" json:"coverImage"`
	DemoVideo   string        `gorm:"type:varchar(512)" json:"demoVideo"`
	Status      ProjectStatus `gorm:"type:varchar(16);not null;default:planning;index:idx_project_status" json:"status"`
	Priority    Priority      `gorm:"type:varchar(16);not null;default:medium" json:"priority"`

	// User references. Clients and TeamMembers are set-like: the assign
	// endpoint never appends an ID that is already present.
	Clients     datatypes.JSONSlice[uint] `gorm:"type:json" json:"clients"`
	ManagerID   *uint                     `json:"manager"`
	TeamMembers datatypes.JSONSlice[uint] `gorm:"type:json" json:"teamMembers"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Budget    float64    `gorm:"default:0" json:"budget"`
	Currency  string     `gorm:"type:varchar(8);default:USD" json:"currency"`

	Tags datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"`
	FAQs FAQList                     `gorm:"column:faqs;type:json" json:"faqs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }
