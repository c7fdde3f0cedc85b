package domain

import "time"

// 学年枚举（罗马数字），与课程表保持一致
var CourseYears = []string{"I", "II", "III", "IV"}

func ValidCourseYear(y string) bool {
	for _, v := range CourseYears {
		if v == y {
			return true
		}
	}
	return false
}

type Course struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:32;not null" json:"code"`
	Acronym   string    `gorm:"size:32;not null" json:"acronym"`
	Year      string    `gorm:"size:4;not null" json:"year"` // I/II/III/IV
	CreatedBy string    `gorm:"size:36;index" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Course) TableName() string { return "courses" }

type CourseRepository interface {
	Create(c *Course) error
	FindByCode(code string) (*Course, error)
	List() ([]Course, error)
}
