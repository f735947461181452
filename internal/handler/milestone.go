package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type MilestoneHandler struct {
	milestoneService *service.MilestoneService
}

func NewMilestoneHandler(milestoneService *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// POST /projects/:projectId/milestones
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req struct {
		Title       string                `json:"title" binding:"required,max=256"`
		Description string                `json:"description"`
		AssignedTo  *uint                 `json:"assignedTo"`
		Status      model.MilestoneStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed on-hold"`
		StartDate   *time.Time            `json:"startDate"`
		DueDate     *time.Time            `json:"dueDate"`
		Order       int                   `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	milestone := &model.Milestone{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Order:       req.Order,
	}
	if milestone.Status == "" {
		milestone.Status = model.MilestonePending
	}

	milestone, err := h.milestoneService.Create(parseID(c.Param("projectId")), milestone)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, milestone)
}

// GET /projects/:projectId/milestones
func (h *MilestoneHandler) List(c *gin.Context) {
	milestones, err := h.milestoneService.ListByProject(parseID(c.Param("projectId")))
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(milestones), milestones)
}

// PATCH /projects/:projectId/milestones/:milestoneId
func (h *MilestoneHandler) Update(c *gin.Context) {
	var req struct {
		Title       *string                `json:"title"`
		Description *string                `json:"description"`
		Status      *model.MilestoneStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed on-hold"`
		StartDate   *time.Time             `json:"startDate"`
		DueDate     *time.Time             `json:"dueDate"`
		Order       *int                   `json:"order"`
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
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	milestone, err := h.milestoneService.Update(parseID(c.Param("projectId")), parseID(c.Param("milestoneId")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, milestone)
}

// DELETE /projects/:projectId/milestones/:milestoneId
func (h *MilestoneHandler) Delete(c *gin.Context) {
	if err := h.milestoneService.Delete(parseID(c.Param("milestoneId"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "Milestone and its modules/tasks deleted")
}

// PATCH /projects/:projectId/milestones/:milestoneId/assign
func (h *MilestoneHandler) Assign(c *gin.Context) {
	var req struct {
		AssignedTo *uint `json:"assignedTo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "assignedTo (userId) is required")
		return
	}

	milestone, err := h.milestoneService.Assign(parseID(c.Param("projectId")), parseID(c.Param("milestoneId")), *req.AssignedTo)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, milestone)
}
