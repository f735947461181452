package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

// newTestDB opens a private in-memory database and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Milestone{},
		&model.Module{},
		&model.Task{},
		&model.Product{},
		&model.Testimonial{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProject(t *testing.T, db *gorm.DB, title string) *model.Project {
	t.Helper()
	project := &model.Project{
		Title:    title,
		Status:   model.ProjectPlanning,
		Priority: model.PriorityMedium,
		Currency: "USD",
	}
	require.NoError(t, db.Create(project).Error)
	return project
}
