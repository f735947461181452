package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type ModuleHandler struct {
	moduleService *service.ModuleService
}

func NewModuleHandler(moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// POST /projects/:projectId/milestones/:milestoneId/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	var req struct {
		Name        string             `json:"name" binding:"required,max=256"`
		Description string             `json:"description"`
		Status      model.ModuleStatus `json:"status" binding:"omitempty,oneof=pending in-progress in-review completed"`
		AssignedTo  *uint              `json:"assignedTo"`
		DueDate     *time.Time         `json:"dueDate"`
		Order       int                `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	module := &model.Module{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Order:       req.Order,
	}
	if module.Status == "" {
		module.Status = model.ModulePending
	}

	module, err := h.moduleService.Create(parseID(c.Param("milestoneId")), module)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, module)
}

// GET /projects/:projectId/milestones/:milestoneId/modules
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.moduleService.ListByMilestone(parseID(c.Param("milestoneId")))
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(modules), modules)
}

// PATCH /projects/:projectId/milestones/:milestoneId/modules/:moduleId
func (h *ModuleHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string             `json:"name"`
		Description *string             `json:"description"`
		Status      *model.ModuleStatus `json:"status" binding:"omitempty,oneof=pending in-progress in-review completed"`
		DueDate     *time.Time          `json:"dueDate"`
		Order       *int                `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	module, err := h.moduleService.Update(parseID(c.Param("moduleId")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, module)
}

// PATCH /projects/:projectId/milestones/:milestoneId/modules/:moduleId/assign
func (h *ModuleHandler) Assign(c *gin.Context) {
	var req struct {
		AssignedTo *uint `json:"assignedTo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "assignedTo (userId) is required")
		return
	}

	module, err := h.moduleService.Assign(parseID(c.Param("moduleId")), *req.AssignedTo)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, module)
}
