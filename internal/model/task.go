package model

import (
	"time"

	"gorm.io/datatypes"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskInReview   TaskStatus = "in-review"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// Task is the atomic work unit, linked to a Module. Milestone and project
// references are denormalized for fast lookups and the cascade.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(256);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ModuleID    uint       `gorm:"not null;index:idx_task_module" json:"module"`
	MilestoneID uint       `gorm:"index:idx_task_milestone" json:"milestone"`
	ProjectID   uint       `gorm:"index:idx_task_project" json:"project"`
	Status      TaskStatus `gorm:"type:varchar(16);not null;default:todo" json:"status"`
	Priority    Priority   `gorm:"type:varchar(16);not null;default:medium" json:"priority"`
	ReporterID  *uint      `json:"reporter"`
	AssigneeID  *uint      `json:"assignee"`
	DueDate     *time.Time `json:"dueDate"`
	// Stamped on the first transition to done, never cleared after.
	CompletedAt    *time.Time                  `json:"completedAt"`
	Labels         datatypes.JSONSlice[string] `gorm:"type:json" json:"labels"`
	EstimatedHours float64                     `gorm:"default:0" json:"estimatedHours"`
	LoggedHours    float64                     `gorm:"default:0" json:"loggedHours"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }
