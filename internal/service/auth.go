package service

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	jwtpkg "github.com/ZeeshanMalik1/switch2itech-backend/pkg/jwt"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpireHours int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpireHours}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Profile  string
	Role     model.Role
	PhoneNo  string
	Company  string
	Address  string
}

// Register stores a new user with a bcrypt hash of the password. Emails are
// compared and stored lowercased, so the uniqueness check is case-insensitive.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	s.db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, apperr.Conflictf("Email already exists")
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, apperr.Validationf("invalid role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internalf("hash password: %v", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Profile:      in.Profile,
		PhoneNo:      in.PhoneNo,
		Company:      in.Company,
		Address:      in.Address,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperr.Internalf("create user: %v", err)
	}
	return user, nil
}

// Login verifies credentials and stamps the last-login time. Unknown email
// and wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	var user model.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authf("Invalid credentials")
		}
		return nil, apperr.Internalf("lookup user: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Authf("Invalid credentials")
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.db.Model(&user).Update("last_login_at", &now)

	return &user, nil
}

// IssueToken signs the 7-day (configurable) session token carrying user ID
// and role.
func (s *AuthService) IssueToken(user *model.User) (string, time.Time, error) {
	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, string(user.Role), s.jwtExpire)
	if err != nil {
		return "", time.Time{}, apperr.Internalf("issue token: %v", err)
	}
	return token, expireAt, nil
}
