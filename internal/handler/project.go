package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	userService    *service.UserService
}

func NewProjectHandler(projectService *service.ProjectService, userService *service.UserService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, userService: userService}
}

// projectView swaps the stored user-ID references for display projections.
type projectView struct {
	model.Project
	Clients     []model.UserBrief `json:"clients"`
	Manager     *model.UserBrief  `json:"manager"`
	TeamMembers []model.UserBrief `json:"teamMembers"`
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Title       string              `json:"title" binding:"required,max=256"`
		Description string              `json:"description"`
		CoverImage  string              `json:"coverImage"`
		DemoVideo   string              `json:"demoVideo"`
		Status      model.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold in-review completed cancelled"`
		Priority    model.Priority      `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		Clients     []uint              `json:"clients"`
		Manager     *uint               `json:"manager"`
		TeamMembers []uint              `json:"teamMembers"`
		StartDate   *time.Time          `json:"startDate"`
		EndDate     *time.Time          `json:"endDate"`
		Budget      float64             `json:"budget" binding:"omitempty,min=0"`
		Currency    string              `json:"currency"`
		Tags        []string            `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		DemoVideo:   req.DemoVideo,
		Status:      req.Status,
		Priority:    req.Priority,
		Clients:     lo.Uniq(req.Clients),
		ManagerID:   req.Manager,
		TeamMembers: lo.Uniq(req.TeamMembers),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Tags:        req.Tags,
	}
	if project.Status == "" {
		project.Status = model.ProjectPlanning
	}
	if project.Priority == "" {
		project.Priority = model.PriorityMedium
	}
	if project.Currency == "" {
		project.Currency = "USD"
	}

	project, err := h.projectService.Create(project)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, project)
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expandProjects(projects)
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(views), views)
}

// GET /projects/:id — the project plus all milestones and modules under it.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, milestones, modules, err := h.projectService.Get(parseID(c.Param("projectId")))
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expandProjects([]model.Project{*project})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{
		"project":    views[0],
		"milestones": milestones,
		"modules":    modules,
	})
}

// PATCH /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		CoverImage  *string              `json:"coverImage"`
		DemoVideo   *string              `json:"demoVideo"`
		Status      *model.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold in-review completed cancelled"`
		Priority    *model.Priority      `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		StartDate   *time.Time           `json:"startDate"`
		EndDate     *time.Time           `json:"endDate"`
		Budget      *float64             `json:"budget" binding:"omitempty,min=0"`
		Currency    *string              `json:"currency"`
		Tags        *[]string            `json:"tags"`
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
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.DemoVideo != nil {
		updates["demo_video"] = *req.DemoVideo
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*req.Tags)
	}

	project, err := h.projectService.Update(parseID(c.Param("projectId")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(parseID(c.Param("projectId"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "Project and all children deleted")
}

// PATCH /projects/:id/assign
func (h *ProjectHandler) AssignTeam(c *gin.Context) {
	var req struct {
		Clients     []uint `json:"clients"`
		Manager     *uint  `json:"manager"`
		TeamMembers []uint `json:"teamMembers"`
		Action      string `json:"action" binding:"omitempty,oneof=add remove"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Action == "" {
		req.Action = "add"
	}

	project, err := h.projectService.AssignTeam(parseID(c.Param("projectId")), service.AssignTeamInput{
		Clients:     req.Clients,
		Manager:     req.Manager,
		TeamMembers: req.TeamMembers,
		Action:      req.Action,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expandProjects([]model.Project{*project})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, views[0])
}

// POST /projects/:id/faqs
func (h *ProjectHandler) AddFAQ(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "question and answer are required")
		return
	}

	project, err := h.projectService.AddFAQ(parseID(c.Param("projectId")), req.Question, req.Answer)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// PATCH /projects/:id/faqs/:faqId
func (h *ProjectHandler) UpdateFAQ(c *gin.Context) {
	var req struct {
		Question *string `json:"question"`
		Answer   *string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateFAQ(parseID(c.Param("projectId")), c.Param("faqId"), req.Question, req.Answer)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// DELETE /projects/:id/faqs/:faqId
func (h *ProjectHandler) DeleteFAQ(c *gin.Context) {
	project, err := h.projectService.DeleteFAQ(parseID(c.Param("projectId")), c.Param("faqId"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

func (h *ProjectHandler) expandProjects(projects []model.Project) ([]projectView, error) {
	var ids []uint
	for i := range projects {
		ids = append(ids, projects[i].Clients...)
		ids = append(ids, projects[i].TeamMembers...)
		if projects[i].ManagerID != nil {
			ids = append(ids, *projects[i].ManagerID)
		}
	}

	briefs, err := h.userService.BriefsFor(lo.Uniq(ids))
	if err != nil {
		return nil, err
	}

	views := make([]projectView, 0, len(projects))
	for i := range projects {
		p := projects[i]
		view := projectView{
			Project:     p,
			Clients:     pickBriefs(briefs, p.Clients),
			TeamMembers: pickBriefs(briefs, p.TeamMembers),
		}
		if p.ManagerID != nil {
			if b, ok := briefs[*p.ManagerID]; ok {
				view.Manager = &b
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func pickBriefs(briefs map[uint]model.UserBrief, ids []uint) []model.UserBrief {
	out := make([]model.UserBrief, 0, len(ids))
	for _, id := range ids {
		if b, ok := briefs[id]; ok {
			out = append(out, b)
		}
	}
	return out
}
