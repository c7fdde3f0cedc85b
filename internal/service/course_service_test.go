package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-api/internal/domain"
)

func TestCourseAddAndList(t *testing.T) {
	svc := NewCourseService(&memCourseRepo{})

	c, err := svc.Add(AddCourseInput{Name: "Data Structures", Code: "CS201", Acronym: "DS", Year: "II"}, "u-1")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "u-1", c.CreatedBy)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CS201", list[0].Code)
}

func TestCourseAdd_MissingFields(t *testing.T) {
	svc := NewCourseService(&memCourseRepo{})

	_, err := svc.Add(AddCourseInput{Name: "X", Code: "C1", Year: "I"}, "u-1")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "All the fields are required.", de.Msg)
}

func TestCourseAdd_InvalidYear(t *testing.T) {
	svc := NewCourseService(&memCourseRepo{})

	_, err := svc.Add(AddCourseInput{Name: "X", Code: "C1", Acronym: "X", Year: "V"}, "u-1")
	assert.Error(t, err)
}

func TestCourseAdd_DuplicateCode(t *testing.T) {
	svc := NewCourseService(&memCourseRepo{})

	_, err := svc.Add(AddCourseInput{Name: "X", Code: "C1", Acronym: "X", Year: "I"}, "u-1")
	require.NoError(t, err)

	_, err = svc.Add(AddCourseInput{Name: "Y", Code: "C1", Acronym: "Y", Year: "II"}, "u-2")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "Course code already exists.", de.Msg)
}
