package model

import "time"

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneOnHold     MilestoneStatus = "on-hold"
)

// Milestone belongs to a Project (e.g. Sprint 1, Phase 2).
type Milestone struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"type:varchar(256);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	ProjectID   uint            `gorm:"not null;index:idx_milestone_project" json:"project"`
	AssignedTo  *uint           `json:"assignedTo"`
	Status      MilestoneStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	StartDate   *time.Time      `json:"startDate"`
	DueDate     *time.Time      `json:"dueDate"`
	Order       int             `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Milestone) TableName() string { return "milestones" }
