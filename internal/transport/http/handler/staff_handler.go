package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-api/internal/service"
)

type StaffHandler struct {
	svc *service.StaffService
	log *zap.Logger
}

func NewStaffHandler(svc *service.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: log}
}

// GET /api/staff
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
