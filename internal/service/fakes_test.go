package service

import (
	"sort"
	"sync"

	"timetable-api/internal/domain"
)

// 内存版仓储，行为对齐 repo 包的 gorm 实现（唯一冲突、软删除语义）

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.Conflict("User already exists")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListByRole(role string, offset, limit int) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, int64(len(out)), nil
}

func (r *memUserRepo) List(q string, offset, limit int) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, int64(len(out)), nil
}

func (r *memUserRepo) SoftDelete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.NotFound("User not found")
	}
	delete(r.users, id)
	return nil
}

type memCourseRepo struct {
	mu      sync.Mutex
	courses []domain.Course
}

func (r *memCourseRepo) Create(c *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.courses {
		if e.Code == c.Code {
			return domain.Conflict("Course code already exists.")
		}
	}
	r.courses = append(r.courses, *c)
	return nil
}

func (r *memCourseRepo) FindByCode(code string) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.courses {
		if e.Code == code {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCourseRepo) List() ([]domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Course(nil), r.courses...), nil
}
