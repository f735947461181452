package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// Create requires the parent module to exist. Milestone and project
// references are denormalized from the module; the reporter is the caller.
func (s *TaskService) Create(moduleID, reporterID uint, task *model.Task) (*model.Task, error) {
	var module model.Module
	if err := s.db.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Module not found")
		}
		return nil, apperr.Internalf("get module: %v", err)
	}

	task.ModuleID = module.ID
	task.MilestoneID = module.MilestoneID
	task.ProjectID = module.ProjectID
	task.ReporterID = &reporterID
	if err := s.db.Create(task).Error; err != nil {
		return nil, apperr.Internalf("create task: %v", err)
	}
	return task, nil
}

func (s *TaskService) ListByModule(moduleID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.Where("module_id = ?", moduleID).Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, apperr.Internalf("list tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(id uint) (*model.Task, error) {
	var task model.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Task not found")
		}
		return nil, apperr.Internalf("get task: %v", err)
	}
	return &task, nil
}

// Update is a partial merge. The first transition to done stamps CompletedAt;
// it is never cleared or re-stamped automatically.
func (s *TaskService) Update(id uint, updates map[string]interface{}) (*model.Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if st, ok := updates["status"]; ok &&
		fmt.Sprint(st) == string(model.TaskDone) && task.CompletedAt == nil {
		updates["completed_at"] = time.Now()
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update task: %v", err)
		}
	}
	return s.Get(id)
}

func (s *TaskService) Delete(id uint) error {
	task, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(task).Error; err != nil {
		return apperr.Internalf("delete task: %v", err)
	}
	return nil
}

func (s *TaskService) Assign(id, userID uint) (*model.Task, error) {
	var count int64
	s.db.Model(&model.User{}).Where("id = ?", userID).Count(&count)
	if count == 0 {
		return nil, apperr.NotFoundf("User not found")
	}

	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	task.AssigneeID = &userID
	if err := s.db.Model(task).Update("assignee_id", userID).Error; err != nil {
		return nil, apperr.Internalf("assign task: %v", err)
	}
	return task, nil
}
