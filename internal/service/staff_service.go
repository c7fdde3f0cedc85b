package service

import (
	"context"
	"time"

	"timetable-api/internal/core/cache"
	"timetable-api/internal/domain"
)

const StaffListKey = "staff:list"

// StaffMember 教师列表条目，只暴露 id/name/email
type StaffMember struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StaffService struct {
	users domain.UserRepository
	cache *cache.Cache // 可为 nil，直接回源
	ttl   time.Duration
}

func NewStaffService(users domain.UserRepository, c *cache.Cache, ttl time.Duration) *StaffService {
	return &StaffService{users: users, cache: c, ttl: ttl}
}

func (s *StaffService) List(ctx context.Context) ([]StaffMember, error) {
	if s.cache == nil {
		return s.load(ctx)
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, StaffListKey, s.ttl, s.load)
	if err != nil {
		// 缓存故障不拦读：降级直查
		return s.load(ctx)
	}
	return out, nil
}

func (s *StaffService) load(_ context.Context) ([]StaffMember, error) {
	users, _, err := s.users.ListByRole(domain.RoleStaff, 0, 1000)
	if err != nil {
		return nil, domain.Internal("Failed to fetch staff", err)
	}
	out := make([]StaffMember, 0, len(users))
	for _, u := range users {
		out = append(out, StaffMember{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}
