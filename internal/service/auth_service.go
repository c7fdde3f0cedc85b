package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"timetable-api/internal/core/auth"
	"timetable-api/internal/core/cache"
	"timetable-api/internal/domain"
	"timetable-api/pkg/utils"
)

// AuthService 认证核心：注册建号 + 登录校验，成功后签发会话令牌
type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	cost  int          // bcrypt 工作因子，由配置注入
	cache *cache.Cache // 可为 nil
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, bcryptCost int, c *cache.Cache, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, cost: bcryptCost, cache: c, log: log}
}

type RegisterInput struct {
	Name       string
	Mobile     string
	Email      string
	Department string
	Role       string
	Gender     string
	Password   string
}

type AuthResult struct {
	Token string
	User  domain.UserSummary
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Validation("Email and password are required")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if !domain.ValidRole(role) {
		return nil, domain.Validation("Invalid role")
	}

	// 快路径查重；真正的裁决在 email 唯一索引上，Create 会把冲突映射回来
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}
	if existing != nil {
		return nil, domain.Conflict("User already exists")
	}

	hash, err := utils.HashPassword(in.Password, s.cost)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         in.Name,
		Mobile:       in.Mobile,
		Department:   in.Department,
		Gender:       in.Gender,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}

	if s.cache != nil && role == domain.RoleStaff {
		s.cache.Invalidate(ctx, StaffListKey)
	}

	tok, err := s.jwter.Issue(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}

	s.log.Info("user registered", zap.String("uid", u.ID), zap.String("role", u.Role))
	return &AuthResult{Token: tok, User: u.Summary()}, nil
}

// Login loginAs 仅作参考信息：角色只认存储里的记录
func (s *AuthService) Login(ctx context.Context, email, password, loginAs string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.Validation("Email and password are required")
	}

	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}
	if u == nil {
		return nil, domain.NotFound("User not found")
	}

	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.InvalidCredential("Invalid credentials")
	}

	if loginAs != "" && loginAs != u.Role {
		s.log.Debug("loginAs mismatch", zap.String("uid", u.ID), zap.String("loginAs", loginAs), zap.String("role", u.Role))
	}

	tok, err := s.jwter.Issue(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}
	return &AuthResult{Token: tok, User: u.Summary()}, nil
}
