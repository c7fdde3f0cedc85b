package repo

import (
	"errors"

	"gorm.io/gorm"

	"timetable-api/internal/domain"
)

type CourseRepo struct{ db *gorm.DB }

func NewCourseRepo(db *gorm.DB) *CourseRepo { return &CourseRepo{db: db} }

func (r *CourseRepo) Create(c *domain.Course) error {
	if err := r.db.Create(c).Error; err != nil {
		if IsDupKey(err) {
			return domain.Conflict("Course code already exists.")
		}
		return err
	}
	return nil
}

func (r *CourseRepo) FindByCode(code string) (*domain.Course, error) {
	var c domain.Course
	err := r.db.First(&c, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CourseRepo) List() ([]domain.Course, error) {
	var cs []domain.Course
	if err := r.db.Order("created_at desc").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}
