package service

import (
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type ProjectService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProjectService(db *gorm.DB, log *zap.Logger) *ProjectService {
	return &ProjectService{db: db, log: log}
}

func (s *ProjectService) Create(project *model.Project) (*model.Project, error) {
	if err := s.db.Create(project).Error; err != nil {
		return nil, apperr.Internalf("create project: %v", err)
	}
	return project, nil
}

func (s *ProjectService) List() ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, apperr.Internalf("list projects: %v", err)
	}
	return projects, nil
}

// Get returns the project together with all its milestones and modules.
func (s *ProjectService) Get(id uint) (*model.Project, []model.Milestone, []model.Module, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, nil, nil, err
	}

	var milestones []model.Milestone
	if err := s.db.Where("project_id = ?", id).Order("display_order").Find(&milestones).Error; err != nil {
		return nil, nil, nil, apperr.Internalf("list milestones: %v", err)
	}
	var modules []model.Module
	if err := s.db.Where("project_id = ?", id).Order("display_order").Find(&modules).Error; err != nil {
		return nil, nil, nil, apperr.Internalf("list modules: %v", err)
	}
	return project, milestones, modules, nil
}

func (s *ProjectService) Update(id uint, updates map[string]interface{}) (*model.Project, error) {
	if _, err := s.find(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update project: %v", err)
		}
	}
	return s.find(id)
}

// Delete removes the project and every descendant record, child-first:
// tasks, then modules, then milestones, then the project itself. The steps
// are independent store writes with no transaction; a crash mid-sequence can
// leave orphans (known limitation, kept as-is).
func (s *ProjectService) Delete(id uint) error {
	if _, err := s.find(id); err != nil {
		return err
	}

	if err := s.db.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
		return apperr.Internalf("delete tasks: %v", err)
	}
	if err := s.db.Where("project_id = ?", id).Delete(&model.Module{}).Error; err != nil {
		return apperr.Internalf("delete modules: %v", err)
	}
	if err := s.db.Where("project_id = ?", id).Delete(&model.Milestone{}).Error; err != nil {
		return apperr.Internalf("delete milestones: %v", err)
	}
	if err := s.db.Delete(&model.Project{}, id).Error; err != nil {
		return apperr.Internalf("delete project: %v", err)
	}

	s.log.Info("project deleted with descendants", zap.Uint("project_id", id))
	return nil
}

type AssignTeamInput struct {
	Clients     []uint
	Manager     *uint
	TeamMembers []uint
	Action      string // "add" or "remove"
}

// AssignTeam maintains the project's client/team lists and each named user's
// assigned-projects back-reference. Adds are set-like (an ID already present
// is not appended again); removes filter both sides and silently ignore IDs
// that were never members. Manager is a plain overwrite. The project write
// and the per-user writes are not atomic (known limitation, kept as-is).
func (s *ProjectService) AssignTeam(id uint, in AssignTeamInput) (*model.Project, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}

	switch in.Action {
	case "add":
		project.Clients = appendMissing(project.Clients, in.Clients)
		project.TeamMembers = appendMissing(project.TeamMembers, in.TeamMembers)
	case "remove":
		project.Clients = lo.Without(project.Clients, in.Clients...)
		project.TeamMembers = lo.Without(project.TeamMembers, in.TeamMembers...)
	default:
		return nil, apperr.Validationf("action must be \"add\" or \"remove\"")
	}

	if in.Manager != nil {
		project.ManagerID = in.Manager
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperr.Internalf("save project: %v", err)
	}

	touched := lo.Uniq(append(append([]uint{}, in.Clients...), in.TeamMembers...))
	if err := s.syncBackReferences(id, touched, in.Action); err != nil {
		return nil, err
	}

	s.log.Info("project team updated",
		zap.Uint("project_id", id),
		zap.String("action", in.Action),
		zap.Int("users", len(touched)))
	return project, nil
}

// syncBackReferences mirrors membership onto users.assigned_projects.
func (s *ProjectService) syncBackReferences(projectID uint, userIDs []uint, action string) error {
	if len(userIDs) == 0 {
		return nil
	}
	var users []model.User
	if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return apperr.Internalf("load users: %v", err)
	}
	for i := range users {
		u := &users[i]
		if action == "add" {
			u.AssignedProjects = appendMissing(u.AssignedProjects, []uint{projectID})
		} else {
			u.AssignedProjects = lo.Without(u.AssignedProjects, projectID)
		}
		if err := s.db.Model(u).Update("assigned_projects", u.AssignedProjects).Error; err != nil {
			return apperr.Internalf("update user %d: %v", u.ID, err)
		}
	}
	return nil
}

func (s *ProjectService) AddFAQ(id uint, question, answer string) (*model.Project, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}
	project.FAQs.Append(question, answer)
	if err := s.db.Model(project).Update("faqs", project.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateFAQ(id uint, faqID string, question, answer *string) (*model.Project, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !project.FAQs.Update(faqID, question, answer) {
		return nil, apperr.NotFoundf("Project or FAQ not found")
	}
	if err := s.db.Model(project).Update("faqs", project.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return project, nil
}

func (s *ProjectService) DeleteFAQ(id uint, faqID string) (*model.Project, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}
	project.FAQs = project.FAQs.Remove(faqID)
	if err := s.db.Model(project).Update("faqs", project.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return project, nil
}

func (s *ProjectService) find(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Project not found")
		}
		return nil, apperr.Internalf("get project: %v", err)
	}
	return &project, nil
}

// appendMissing appends only the IDs not already in the list, preserving the
// existing order (set-like list semantics).
func appendMissing(list []uint, ids []uint) []uint {
	for _, id := range ids {
		if !lo.Contains(list, id) {
			list = append(list, id)
		}
	}
	return list
}
