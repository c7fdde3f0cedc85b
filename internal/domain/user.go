package domain

import (
	"time"

	"gorm.io/gorm"
)

// 角色枚举：只允许 admin / staff
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

func ValidRole(r string) bool { return r == RoleAdmin || r == RoleStaff }

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"_id"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name         string         `gorm:"size:64" json:"name"`
	Mobile       string         `gorm:"size:20" json:"mobile,omitempty"`
	Department   string         `gorm:"size:64" json:"department,omitempty"`
	Gender       string         `gorm:"size:16" json:"gender,omitempty"`
	PasswordHash string         `gorm:"size:191;not null" json:"-"`
	Role         string         `gorm:"size:16;not null;default:staff" json:"role"` // "admin"/"staff"
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserSummary 脱敏视图：返回给客户端的用户信息，永远不带密码哈希
type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	ListByRole(role string, offset, limit int) ([]User, int64, error)
	List(q string, offset, limit int) ([]User, int64, error)
	SoftDelete(id string) error
}
