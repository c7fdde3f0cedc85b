package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-api/internal/service"
	mdw "timetable-api/internal/transport/http/middleware"
)

type CourseHandler struct {
	svc *service.CourseService
	log *zap.Logger
}

func NewCourseHandler(svc *service.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: log}
}

type addCourseReq struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Acronym string `json:"acronym"`
	Year    string `json:"year"`
}

// POST /api/courses/add
func (h *CourseHandler) Add(c *gin.Context) {
	var in addCourseReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	course, err := h.svc.Add(service.AddCourseInput{
		Name:    in.Name,
		Code:    in.Code,
		Acronym: in.Acronym,
		Year:    in.Year,
	}, c.GetString(mdw.KeyUserID))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Course added Successfully", "course": course})
}

// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.svc.List()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
