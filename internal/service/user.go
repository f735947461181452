package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(role model.Role) ([]model.User, error) {
	query := s.db.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []model.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, apperr.Internalf("list users: %v", err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, apperr.Internalf("get user: %v", err)
	}
	return &user, nil
}

func (s *UserService) UpdateRole(id uint, role model.Role) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, apperr.Validationf("invalid role: %s", role)
	}
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.db.Model(user).Update("role", role).Error; err != nil {
		return nil, apperr.Internalf("update role: %v", err)
	}
	return user, nil
}

// BriefsFor resolves a set of user IDs to display projections. Unknown IDs
// are simply absent from the result.
func (s *UserService) BriefsFor(ids []uint) (map[uint]model.UserBrief, error) {
	briefs := make(map[uint]model.UserBrief, len(ids))
	if len(ids) == 0 {
		return briefs, nil
	}
	var users []model.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, apperr.Internalf("resolve users: %v", err)
	}
	for i := range users {
		briefs[users[i].ID] = users[i].Brief()
	}
	return briefs, nil
}
