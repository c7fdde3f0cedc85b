package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-api/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type registerReq struct {
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Password   string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name:       in.Name,
		Mobile:     in.Mobile,
		Email:      in.Email,
		Department: in.Department,
		Role:       in.Role,
		Gender:     in.Gender,
		Password:   in.Password,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registered", "token": out.Token, "user": out.User})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	LoginAs  string `json:"loginAs"` // 前端提示性字段，不参与角色判定
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.svc.Login(c.Request.Context(), in.Email, in.Password, in.LoginAs)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": out.Token, "user": out.User})
}
