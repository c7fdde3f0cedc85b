package service

import (
	"timetable-api/internal/domain"
	"timetable-api/pkg/utils"
)

type CourseService struct {
	courses domain.CourseRepository
}

func NewCourseService(courses domain.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

type AddCourseInput struct {
	Name    string
	Code    string
	Acronym string
	Year    string
}

func (s *CourseService) Add(in AddCourseInput, createdBy string) (*domain.Course, error) {
	if in.Name == "" || in.Code == "" || in.Acronym == "" || in.Year == "" {
		return nil, domain.Validation("All the fields are required.")
	}
	if !domain.ValidCourseYear(in.Year) {
		return nil, domain.Validation("Invalid year")
	}

	existing, err := s.courses.FindByCode(in.Code)
	if err != nil {
		return nil, domain.Internal("Server error while adding course.", err)
	}
	if existing != nil {
		return nil, domain.Conflict("Course code already exists.")
	}

	c := &domain.Course{
		ID:        utils.NewID(),
		Name:      in.Name,
		Code:      in.Code,
		Acronym:   in.Acronym,
		Year:      in.Year,
		CreatedBy: createdBy,
	}
	if err := s.courses.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourseService) List() ([]domain.Course, error) {
	cs, err := s.courses.List()
	if err != nil {
		return nil, domain.Internal("Server error while fetching courses.", err)
	}
	return cs, nil
}
