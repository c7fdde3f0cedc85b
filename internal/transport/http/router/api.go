package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"timetable-api/internal/core/auth"
	"timetable-api/internal/transport/http/handler"
	mdw "timetable-api/internal/transport/http/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Staff  *handler.StaffHandler
	Course *handler.CourseHandler
	Admin  *handler.AdminHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, corsOrigin string, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		corsMiddleware(corsOrigin),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "API Running") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公共口：注册/登录，额外按 IP 限速挡爆破
	authGrp := api.Group("/auth", mdw.RateLimitPerIP(rate.Limit(5), 10))
	authGrp.POST("/register", h.Auth.Register)
	authGrp.POST("/login", h.Auth.Login)

	// 受保护口：先过访问守卫，再按动作做能力检查
	protected := api.Group("", mdw.AuthJWT(jwter))

	protected.GET("/staff", mdw.RequireAction(auth.ActionListStaff), h.Staff.List)

	courses := protected.Group("/courses")
	courses.GET("", mdw.RequireAction(auth.ActionListCourses), h.Course.List)
	courses.POST("/add", mdw.RequireAction(auth.ActionAddCourse), h.Course.Add)

	admin := protected.Group("/admin", mdw.RequireAction(auth.ActionManageUsers))
	admin.GET("/users", h.Admin.ListUsers)
	admin.POST("/users/:id/ban", h.Admin.BanUser)

	return r
}

func corsMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
