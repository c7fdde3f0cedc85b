package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-api/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
	log *zap.Logger
}

func NewAdminHandler(svc *service.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: log}
}

// GET /api/admin/users?q=&offset=&limit=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	page, err := h.svc.ListUsers(c.Query("q"), offset, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /api/admin/users/:id/ban 软删，已签发的令牌到期前仍有效
func (h *AdminHandler) BanUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.BanUser(id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User banned", "id": id})
}
