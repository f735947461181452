package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type ModuleService struct {
	db *gorm.DB
}

func NewModuleService(db *gorm.DB) *ModuleService {
	return &ModuleService{db: db}
}

// Create requires the parent milestone to exist; the project reference is
// denormalized from the milestone.
func (s *ModuleService) Create(milestoneID uint, module *model.Module) (*model.Module, error) {
	var milestone model.Milestone
	if err := s.db.First(&milestone, milestoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Milestone not found")
		}
		return nil, apperr.Internalf("get milestone: %v", err)
	}

	module.MilestoneID = milestone.ID
	module.ProjectID = milestone.ProjectID
	if err := s.db.Create(module).Error; err != nil {
		return nil, apperr.Internalf("create module: %v", err)
	}
	return module, nil
}

func (s *ModuleService) ListByMilestone(milestoneID uint) ([]model.Module, error) {
	var modules []model.Module
	if err := s.db.Where("milestone_id = ?", milestoneID).Order("display_order").Find(&modules).Error; err != nil {
		return nil, apperr.Internalf("list modules: %v", err)
	}
	return modules, nil
}

func (s *ModuleService) Get(id uint) (*model.Module, error) {
	var module model.Module
	if err := s.db.First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Module not found")
		}
		return nil, apperr.Internalf("get module: %v", err)
	}
	return &module, nil
}

// Update is a partial merge. The first transition to completed stamps
// CompletedAt; later completed writes leave the original stamp alone.
func (s *ModuleService) Update(id uint, updates map[string]interface{}) (*model.Module, error) {
	module, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if st, ok := updates["status"]; ok &&
		fmt.Sprint(st) == string(model.ModuleCompleted) && module.CompletedAt == nil {
		updates["completed_at"] = time.Now()
	}

	if len(updates) > 0 {
		if err := s.db.Model(module).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update module: %v", err)
		}
	}
	return s.Get(id)
}

func (s *ModuleService) Assign(id, userID uint) (*model.Module, error) {
	var count int64
	s.db.Model(&model.User{}).Where("id = ?", userID).Count(&count)
	if count == 0 {
		return nil, apperr.NotFoundf("User not found")
	}

	module, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	module.AssignedTo = &userID
	if err := s.db.Model(module).Update("assigned_to", userID).Error; err != nil {
		return nil, apperr.Internalf("assign module: %v", err)
	}
	return module, nil
}
