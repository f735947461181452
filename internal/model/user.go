package model

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleDeveloper Role = "developer"
	RoleManager   Role = "manager"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleClient, RoleDeveloper, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(128);not null" json:"name"`
	Email        string `gorm:"type:varchar(128);uniqueIndex:uk_email;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null;default:user;index:idx_role" json:"role"`
	Profile      string `gorm:"type:varchar(512)" json:"profile"`
	PhoneNo      string `gorm:"type:varchar(32)" json:"phoneNo"`
	Company      string `gorm:"type:varchar(128)" json:"company"`
	Address      string `gorm:"type:varchar(512)" json:"address"`
	// Projects this user is attached to as client or team member. Back-reference
	// maintained by the project assign endpoint, not by the store.
	AssignedProjects datatypes.JSONSlice[uint]   `gorm:"type:json" json:"assignedProjects"`
	Skills           datatypes.JSONSlice[string] `gorm:"type:json" json:"skills"`
	IsVerified       bool                        `gorm:"default:false" json:"isVerified"`
	LastLoginAt      *time.Time                  `json:"lastLoginAt"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserBrief is the projection used when expanding user references on
// projects, tasks and testimonials.
type UserBrief struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Role    Role   `json:"role,omitempty"`
	Profile string `json:"profile,omitempty"`
	Company string `json:"company,omitempty"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Profile: u.Profile,
		Company: u.Company,
	}
}
