package service

import "timetable-api/internal/domain"

// AdminService 管理端用户操作（列表 / 封禁）
type AdminService struct {
	users domain.UserRepository
}

func NewAdminService(users domain.UserRepository) *AdminService {
	return &AdminService{users: users}
}

type UserPage struct {
	Total int64                `json:"total"`
	Items []domain.UserSummary `json:"items"`
}

func (s *AdminService) ListUsers(q string, offset, limit int) (*UserPage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, total, err := s.users.List(q, offset, limit)
	if err != nil {
		return nil, domain.Internal("Server error", err)
	}
	page := &UserPage{Total: total, Items: make([]domain.UserSummary, 0, len(users))}
	for i := range users {
		page.Items = append(page.Items, users[i].Summary())
	}
	return page, nil
}

func (s *AdminService) BanUser(id string) error {
	if id == "" {
		return domain.Validation("missing id")
	}
	return s.users.SoftDelete(id)
}
