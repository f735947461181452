package model

import "time"

type ModuleStatus string

const (
	ModulePending    ModuleStatus = "pending"
	ModuleInProgress ModuleStatus = "in-progress"
	ModuleInReview   ModuleStatus = "in-review"
	ModuleCompleted  ModuleStatus = "completed"
)

// Module belongs to a Milestone. ProjectID is denormalized so project-wide
// queries and the cascade don't need to walk the milestone chain.
type Module struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(256);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	MilestoneID uint         `gorm:"not null;index:idx_module_milestone" json:"milestone"`
	ProjectID   uint         `gorm:"not null;index:idx_module_project" json:"project"`
	Status      ModuleStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	AssignedTo  *uint        `json:"assignedTo"`
	DueDate     *time.Time   `json:"dueDate"`
	// Stamped on the first transition to completed, never cleared after.
	CompletedAt *time.Time `json:"completedAt"`
	Order       int        `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Module) TableName() string { return "modules" }
