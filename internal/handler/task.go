package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/middleware"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// POST /projects/:projectId/milestones/:milestoneId/modules/:moduleId/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		Title          string           `json:"title" binding:"required,max=256"`
		Description    string           `json:"description"`
		Status         model.TaskStatus `json:"status" binding:"omitempty,oneof=todo in-progress in-review done blocked"`
		Priority       model.Priority   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		AssigneeID     *uint            `json:"assignee"`
		DueDate        *time.Time       `json:"dueDate"`
		Labels         []string         `json:"labels"`
		EstimatedHours float64          `json:"estimatedHours" binding:"omitempty,min=0"`
		LoggedHours    float64          `json:"loggedHours" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssigneeID:     req.AssigneeID,
		DueDate:        req.DueDate,
		Labels:         req.Labels,
		EstimatedHours: req.EstimatedHours,
		LoggedHours:    req.LoggedHours,
	}
	if task.Status == "" {
		task.Status = model.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}

	task, err := h.taskService.Create(parseID(c.Param("moduleId")), middleware.GetCurrentUserID(c), task)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, task)
}

// GET /projects/:projectId/milestones/:milestoneId/modules/:moduleId/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.ListByModule(parseID(c.Param("moduleId")))
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(tasks), tasks)
}

// PATCH .../tasks/:taskId
func (h *TaskHandler) Update(c *gin.Context) {
	var req struct {
		Title          *string           `json:"title"`
		Description    *string           `json:"description"`
		Status         *model.TaskStatus `json:"status" binding:"omitempty,oneof=todo in-progress in-review done blocked"`
		Priority       *model.Priority   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		DueDate        *time.Time        `json:"dueDate"`
		EstimatedHours *float64          `json:"estimatedHours" binding:"omitempty,min=0"`
		LoggedHours    *float64          `json:"loggedHours" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.EstimatedHours != nil {
		updates["estimated_hours"] = *req.EstimatedHours
	}
	if req.LoggedHours != nil {
		updates["logged_hours"] = *req.LoggedHours
	}

	task, err := h.taskService.Update(parseID(c.Param("taskId")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, task)
}

// DELETE .../tasks/:taskId
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(parseID(c.Param("taskId"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "Task deleted")
}

// PATCH .../tasks/:taskId/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	var req struct {
		Assignee *uint `json:"assignee" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "assignee (userId) is required")
		return
	}

	task, err := h.taskService.Assign(parseID(c.Param("taskId")), *req.Assignee)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, task)
}
