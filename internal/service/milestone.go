package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type MilestoneService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMilestoneService(db *gorm.DB, log *zap.Logger) *MilestoneService {
	return &MilestoneService{db: db, log: log}
}

// Create requires the parent project to exist.
func (s *MilestoneService) Create(projectID uint, milestone *model.Milestone) (*model.Milestone, error) {
	var count int64
	s.db.Model(&model.Project{}).Where("id = ?", projectID).Count(&count)
	if count == 0 {
		return nil, apperr.NotFoundf("Project not found")
	}

	milestone.ProjectID = projectID
	if err := s.db.Create(milestone).Error; err != nil {
		return nil, apperr.Internalf("create milestone: %v", err)
	}
	return milestone, nil
}

func (s *MilestoneService) ListByProject(projectID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	if err := s.db.Where("project_id = ?", projectID).Order("display_order").Find(&milestones).Error; err != nil {
		return nil, apperr.Internalf("list milestones: %v", err)
	}
	return milestones, nil
}

func (s *MilestoneService) Get(id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := s.db.First(&milestone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Milestone not found")
		}
		return nil, apperr.Internalf("get milestone: %v", err)
	}
	return &milestone, nil
}

// Update is a partial merge, scoped to the project given in the path.
func (s *MilestoneService) Update(projectID, id uint, updates map[string]interface{}) (*model.Milestone, error) {
	milestone, err := s.findScoped(projectID, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(milestone).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update milestone: %v", err)
		}
	}
	return s.findScoped(projectID, id)
}

// Delete cascades to the milestone's modules and tasks, child-first, with no
// transaction (known limitation, kept as-is).
func (s *MilestoneService) Delete(id uint) error {
	milestone, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Where("milestone_id = ?", id).Delete(&model.Task{}).Error; err != nil {
		return apperr.Internalf("delete tasks: %v", err)
	}
	if err := s.db.Where("milestone_id = ?", id).Delete(&model.Module{}).Error; err != nil {
		return apperr.Internalf("delete modules: %v", err)
	}
	if err := s.db.Delete(milestone).Error; err != nil {
		return apperr.Internalf("delete milestone: %v", err)
	}

	s.log.Info("milestone deleted with descendants", zap.Uint("milestone_id", id))
	return nil
}

// Assign overwrites the single assignee reference after checking the user
// exists.
func (s *MilestoneService) Assign(projectID, id, userID uint) (*model.Milestone, error) {
	var count int64
	s.db.Model(&model.User{}).Where("id = ?", userID).Count(&count)
	if count == 0 {
		return nil, apperr.NotFoundf("User not found")
	}

	milestone, err := s.findScoped(projectID, id)
	if err != nil {
		return nil, err
	}
	milestone.AssignedTo = &userID
	if err := s.db.Model(milestone).Update("assigned_to", userID).Error; err != nil {
		return nil, apperr.Internalf("assign milestone: %v", err)
	}
	return milestone, nil
}

func (s *MilestoneService) findScoped(projectID, id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	err := s.db.Where("id = ? AND project_id = ?", id, projectID).First(&milestone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Milestone not found")
		}
		return nil, apperr.Internalf("get milestone: %v", err)
	}
	return &milestone, nil
}
