package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type TestimonialService struct {
	db *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

// Create enforces one testimonial per (author, project) and one per
// (author, product). The pre-checks give a clean message; the composite
// unique indexes back them up against races.
func (s *TestimonialService) Create(t *model.Testimonial) (*model.Testimonial, error) {
	if t.ProjectID != nil {
		var count int64
		s.db.Model(&model.Testimonial{}).
			Where("author_id = ? AND project_id = ?", t.AuthorID, *t.ProjectID).Count(&count)
		if count > 0 {
			return nil, apperr.Conflictf("You have already submitted a testimonial for this project/product")
		}
	}
	if t.ProductID != nil {
		var count int64
		s.db.Model(&model.Testimonial{}).
			Where("author_id = ? AND product_id = ?", t.AuthorID, *t.ProductID).Count(&count)
		if count > 0 {
			return nil, apperr.Conflictf("You have already submitted a testimonial for this project/product")
		}
	}

	if err := s.db.Create(t).Error; err != nil {
		return nil, apperr.Conflictf("You have already submitted a testimonial for this project/product")
	}
	return t, nil
}

type TestimonialFilter struct {
	ApprovedOnly bool
	FeaturedOnly bool
	ProjectID    *uint
	ProductID    *uint
}

// List returns testimonials newest-created-first.
func (s *TestimonialService) List(filter TestimonialFilter) ([]model.Testimonial, error) {
	query := s.db.Model(&model.Testimonial{})
	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	var testimonials []model.Testimonial
	if err := query.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, apperr.Internalf("list testimonials: %v", err)
	}
	return testimonials, nil
}

func (s *TestimonialService) Get(id uint) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Testimonial not found")
		}
		return nil, apperr.Internalf("get testimonial: %v", err)
	}
	return &t, nil
}

// Related resolves the author/project/product references for a batch of
// testimonials so handlers can expand them without touching the store.
func (s *TestimonialService) Related(items []model.Testimonial) (map[uint]model.UserBrief, map[uint]model.Project, map[uint]model.Product, error) {
	var authorIDs, projectIDs, productIDs []uint
	for i := range items {
		authorIDs = append(authorIDs, items[i].AuthorID)
		if items[i].ProjectID != nil {
			projectIDs = append(projectIDs, *items[i].ProjectID)
		}
		if items[i].ProductID != nil {
			productIDs = append(productIDs, *items[i].ProductID)
		}
	}

	authors := make(map[uint]model.UserBrief)
	if len(authorIDs) > 0 {
		var users []model.User
		if err := s.db.Where("id IN ?", authorIDs).Find(&users).Error; err != nil {
			return nil, nil, nil, apperr.Internalf("resolve authors: %v", err)
		}
		for i := range users {
			authors[users[i].ID] = users[i].Brief()
		}
	}

	projects := make(map[uint]model.Project)
	if len(projectIDs) > 0 {
		var rows []model.Project
		if err := s.db.Where("id IN ?", projectIDs).Find(&rows).Error; err != nil {
			return nil, nil, nil, apperr.Internalf("resolve projects: %v", err)
		}
		for i := range rows {
			projects[rows[i].ID] = rows[i]
		}
	}

	products := make(map[uint]model.Product)
	if len(productIDs) > 0 {
		var rows []model.Product
		if err := s.db.Where("id IN ?", productIDs).Find(&rows).Error; err != nil {
			return nil, nil, nil, apperr.Internalf("resolve products: %v", err)
		}
		for i := range rows {
			products[rows[i].ID] = rows[i]
		}
	}

	return authors, projects, products, nil
}

type TestimonialUpdate struct {
	Title                 *string
	Content               *string
	Rating                *int
	AuthorNameOverride    *string
	AuthorRoleOverride    *string
	AuthorCompanyOverride *string
	AuthorAvatarOverride  *string
}

// Update lets the author or an admin modify the allow-listed fields. An
// author edit (non-admin) resets approval, sending the entry back through
// moderation.
func (s *TestimonialService) Update(id uint, caller *model.User, in TestimonialUpdate) (*model.Testimonial, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	isOwner := t.AuthorID == caller.ID
	isAdmin := caller.Role == model.RoleAdmin
	if !isOwner && !isAdmin {
		return nil, apperr.Forbiddenf("Forbidden")
	}

	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.AuthorNameOverride != nil {
		updates["author_name_override"] = *in.AuthorNameOverride
	}
	if in.AuthorRoleOverride != nil {
		updates["author_role_override"] = *in.AuthorRoleOverride
	}
	if in.AuthorCompanyOverride != nil {
		updates["author_company_override"] = *in.AuthorCompanyOverride
	}
	if in.AuthorAvatarOverride != nil {
		updates["author_avatar_override"] = *in.AuthorAvatarOverride
	}

	if isOwner && !isAdmin {
		updates["is_approved"] = false
	}

	if len(updates) > 0 {
		if err := s.db.Model(t).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update testimonial: %v", err)
		}
	}
	return s.Get(id)
}

// Approve sets the moderation flags; admin-only at the route level.
func (s *TestimonialService) Approve(id uint, isApproved bool, isFeatured *bool) (*model.Testimonial, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"is_approved": isApproved}
	if isFeatured != nil {
		updates["is_featured"] = *isFeatured
	}
	if err := s.db.Model(t).Updates(updates).Error; err != nil {
		return nil, apperr.Internalf("approve testimonial: %v", err)
	}
	return s.Get(id)
}

func (s *TestimonialService) Delete(id uint) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(t).Error; err != nil {
		return apperr.Internalf("delete testimonial: %v", err)
	}
	return nil
}
