package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/middleware"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type TestimonialHandler struct {
	testimonialService *service.TestimonialService
}

func NewTestimonialHandler(testimonialService *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// testimonialView swaps the stored references for display projections.
type testimonialView struct {
	model.Testimonial
	Author  *model.UserBrief `json:"author"`
	Project gin.H            `json:"project"`
	Product gin.H            `json:"product"`
}

// GET /testimonials?approved=true&featured=true&project=&product=
func (h *TestimonialHandler) List(c *gin.Context) {
	filter := service.TestimonialFilter{
		ApprovedOnly: c.Query("approved") == "true",
		FeaturedOnly: c.Query("featured") == "true",
	}
	if s := c.Query("project"); s != "" {
		id := parseID(s)
		filter.ProjectID = &id
	}
	if s := c.Query("product"); s != "" {
		id := parseID(s)
		filter.ProductID = &id
	}

	testimonials, err := h.testimonialService.List(filter)
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expand(testimonials)
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(views), views)
}

// GET /testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	t, err := h.testimonialService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expand([]model.Testimonial{*t})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, views[0])
}

// POST /testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req struct {
		Title                 string `json:"title"`
		Content               string `json:"content" binding:"required"`
		Rating                int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Project               *uint  `json:"project"`
		Product               *uint  `json:"product"`
		AuthorNameOverride    string `json:"authorNameOverride"`
		AuthorRoleOverride    string `json:"authorRoleOverride"`
		AuthorCompanyOverride string `json:"authorCompanyOverride"`
		AuthorAvatarOverride  string `json:"authorAvatarOverride"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Rating == 0 {
		req.Rating = 5
	}

	t, err := h.testimonialService.Create(&model.Testimonial{
		AuthorID:              middleware.GetCurrentUserID(c),
		Title:                 req.Title,
		Content:               req.Content,
		Rating:                req.Rating,
		ProjectID:             req.Project,
		ProductID:             req.Product,
		AuthorNameOverride:    req.AuthorNameOverride,
		AuthorRoleOverride:    req.AuthorRoleOverride,
		AuthorCompanyOverride: req.AuthorCompanyOverride,
		AuthorAvatarOverride:  req.AuthorAvatarOverride,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, t)
}

// PATCH /testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req struct {
		Title                 *string `json:"title"`
		Content               *string `json:"content"`
		Rating                *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		AuthorNameOverride    *string `json:"authorNameOverride"`
		AuthorRoleOverride    *string `json:"authorRoleOverride"`
		AuthorCompanyOverride *string `json:"authorCompanyOverride"`
		AuthorAvatarOverride  *string `json:"authorAvatarOverride"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	t, err := h.testimonialService.Update(parseID(c.Param("id")), middleware.GetCurrentUser(c), service.TestimonialUpdate{
		Title:                 req.Title,
		Content:               req.Content,
		Rating:                req.Rating,
		AuthorNameOverride:    req.AuthorNameOverride,
		AuthorRoleOverride:    req.AuthorRoleOverride,
		AuthorCompanyOverride: req.AuthorCompanyOverride,
		AuthorAvatarOverride:  req.AuthorAvatarOverride,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, t)
}

// PATCH /testimonials/:id/approve
func (h *TestimonialHandler) Approve(c *gin.Context) {
	var req struct {
		IsApproved *bool `json:"isApproved"`
		IsFeatured *bool `json:"isFeatured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	isApproved := true
	if req.IsApproved != nil {
		isApproved = *req.IsApproved
	}

	t, err := h.testimonialService.Approve(parseID(c.Param("id")), isApproved, req.IsFeatured)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, t)
}

// DELETE /testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "Testimonial deleted")
}

func (h *TestimonialHandler) expand(items []model.Testimonial) ([]testimonialView, error) {
	authors, projects, products, err := h.testimonialService.Related(items)
	if err != nil {
		return nil, err
	}

	views := make([]testimonialView, 0, len(items))
	for i := range items {
		t := items[i]
		view := testimonialView{Testimonial: t}
		if b, ok := authors[t.AuthorID]; ok {
			view.Author = &b
		}
		if t.ProjectID != nil {
			if p, ok := projects[*t.ProjectID]; ok {
				view.Project = gin.H{"id": p.ID, "title": p.Title, "coverImage": p.CoverImage}
			}
		}
		if t.ProductID != nil {
			if p, ok := products[*t.ProductID]; ok {
				view.Product = gin.H{"id": p.ID, "name": p.Name, "category": p.Category, "thumbnail": p.Thumbnail}
			}
		}
		views = append(views, view)
	}
	return views, nil
}
