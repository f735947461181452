package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type hierarchyFixture struct {
	db         *gorm.DB
	milestones *MilestoneService
	modules    *ModuleService
	tasks      *TaskService
	project    *model.Project
}

func newHierarchyFixture(t *testing.T) *hierarchyFixture {
	db := newTestDB(t)
	return &hierarchyFixture{
		db:         db,
		milestones: NewMilestoneService(db, zap.NewNop()),
		modules:    NewModuleService(db),
		tasks:      NewTaskService(db),
		project:    createProject(t, db, "Portal"),
	}
}

func TestMilestoneCreateRequiresProject(t *testing.T) {
	f := newHierarchyFixture(t)

	_, err := f.milestones.Create(999, &model.Milestone{Title: "Orphan"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	assert.Equal(t, f.project.ID, m.ProjectID)
}

func TestMilestoneUpdateScopedToProject(t *testing.T) {
	f := newHierarchyFixture(t)
	other := createProject(t, f.db, "Other")

	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)

	// Same milestone ID under the wrong project is not found.
	_, err = f.milestones.Update(other.ID, m.ID, map[string]interface{}{"title": "x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	updated, err := f.milestones.Update(f.project.ID, m.ID, map[string]interface{}{
		"status":        string(model.MilestoneInProgress),
		"display_order": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, model.MilestoneInProgress, updated.Status)
	assert.Equal(t, 3, updated.Order)
}

func TestMilestoneDeleteCascades(t *testing.T) {
	f := newHierarchyFixture(t)

	keep, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Keep"})
	require.NoError(t, err)
	drop, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Drop"})
	require.NoError(t, err)

	for _, m := range []*model.Milestone{keep, drop} {
		module, err := f.modules.Create(m.ID, &model.Module{Name: "Mod"})
		require.NoError(t, err)
		_, err = f.tasks.Create(module.ID, 1, &model.Task{Title: "T"})
		require.NoError(t, err)
	}

	require.NoError(t, f.milestones.Delete(drop.ID))

	var milestones, modules, tasks int64
	f.db.Model(&model.Milestone{}).Count(&milestones)
	f.db.Model(&model.Module{}).Count(&modules)
	f.db.Model(&model.Task{}).Count(&tasks)
	assert.EqualValues(t, 1, milestones)
	assert.EqualValues(t, 1, modules)
	assert.EqualValues(t, 1, tasks)
}

func TestMilestoneAssignChecksUser(t *testing.T) {
	f := newHierarchyFixture(t)
	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)

	_, err = f.milestones.Assign(f.project.ID, m.ID, 999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	dev := createUser(t, f.db, "Dev", model.RoleDeveloper)
	assigned, err := f.milestones.Assign(f.project.ID, m.ID, dev.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, dev.ID, *assigned.AssignedTo)
}

func TestModuleCreateDenormalizesProject(t *testing.T) {
	f := newHierarchyFixture(t)

	_, err := f.modules.Create(999, &model.Module{Name: "Orphan"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	module, err := f.modules.Create(m.ID, &model.Module{Name: "Auth"})
	require.NoError(t, err)
	assert.Equal(t, m.ID, module.MilestoneID)
	assert.Equal(t, f.project.ID, module.ProjectID)
}

func TestModuleCompletedAtSetOnce(t *testing.T) {
	f := newHierarchyFixture(t)
	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	module, err := f.modules.Create(m.ID, &model.Module{Name: "Auth"})
	require.NoError(t, err)

	updated, err := f.modules.Update(module.ID, map[string]interface{}{
		"status": string(model.ModuleCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	first := *updated.CompletedAt

	time.Sleep(5 * time.Millisecond)
	again, err := f.modules.Update(module.ID, map[string]interface{}{
		"status": string(model.ModuleCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, again.CompletedAt.Equal(first), "completion stamp is never re-written")
}

func TestTaskCreateDenormalizesAndSetsReporter(t *testing.T) {
	f := newHierarchyFixture(t)
	reporter := createUser(t, f.db, "Reporter", model.RoleUser)

	_, err := f.tasks.Create(999, reporter.ID, &model.Task{Title: "Orphan"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	module, err := f.modules.Create(m.ID, &model.Module{Name: "Auth"})
	require.NoError(t, err)

	task, err := f.tasks.Create(module.ID, reporter.ID, &model.Task{Title: "Login form"})
	require.NoError(t, err)
	assert.Equal(t, module.ID, task.ModuleID)
	assert.Equal(t, m.ID, task.MilestoneID)
	assert.Equal(t, f.project.ID, task.ProjectID)
	require.NotNil(t, task.ReporterID)
	assert.Equal(t, reporter.ID, *task.ReporterID)
}

func TestTaskCompletedAtSetOnce(t *testing.T) {
	f := newHierarchyFixture(t)
	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	module, err := f.modules.Create(m.ID, &model.Module{Name: "Auth"})
	require.NoError(t, err)
	task, err := f.tasks.Create(module.ID, 1, &model.Task{Title: "T"})
	require.NoError(t, err)

	done, err := f.tasks.Update(task.ID, map[string]interface{}{"status": string(model.TaskDone)})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	// Reopening does not clear the stamp, and finishing again keeps it.
	reopened, err := f.tasks.Update(task.ID, map[string]interface{}{"status": string(model.TaskInProgress)})
	require.NoError(t, err)
	require.NotNil(t, reopened.CompletedAt)

	time.Sleep(5 * time.Millisecond)
	again, err := f.tasks.Update(task.ID, map[string]interface{}{"status": string(model.TaskDone)})
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(first))
}

func TestTaskAssignAndDelete(t *testing.T) {
	f := newHierarchyFixture(t)
	m, err := f.milestones.Create(f.project.ID, &model.Milestone{Title: "Phase 1"})
	require.NoError(t, err)
	module, err := f.modules.Create(m.ID, &model.Module{Name: "Auth"})
	require.NoError(t, err)
	task, err := f.tasks.Create(module.ID, 1, &model.Task{Title: "T"})
	require.NoError(t, err)

	_, err = f.tasks.Assign(task.ID, 999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	dev := createUser(t, f.db, "Dev", model.RoleDeveloper)
	assigned, err := f.tasks.Assign(task.ID, dev.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssigneeID)
	assert.Equal(t, dev.ID, *assigned.AssigneeID)

	require.NoError(t, f.tasks.Delete(task.ID))
	_, err = f.tasks.Get(task.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
