package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"timetable-api/internal/core/auth"
	"timetable-api/internal/core/cache"
	"timetable-api/internal/core/config"
	"timetable-api/internal/core/database"
	"timetable-api/internal/core/logger"
	"timetable-api/internal/core/server"
	"timetable-api/internal/domain"
	"timetable-api/internal/repo"
	"timetable-api/internal/service"
	"timetable-api/internal/transport/http/handler"
	"timetable-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		// 配置不合法（生产缺签名密钥等）直接拒绝启动
		log.Fatalf("config: %v", err)
	}
	l, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, l)
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Course{}); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		l.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	userRepo := repo.NewUserRepo(db)
	courseRepo := repo.NewCourseRepo(db)

	authSvc := service.NewAuthService(userRepo, jwter, cfg.Auth.BcryptCost, c, l)
	staffSvc := service.NewStaffService(userRepo, c, time.Duration(cfg.Redis.StaffCacheTTLSec)*time.Second)
	courseSvc := service.NewCourseService(courseRepo)
	adminSvc := service.NewAdminService(userRepo)

	r := router.NewAPIEngine(l, jwter, cfg.App.HTTP.CORSOrigin, router.Handlers{
		Auth:   handler.NewAuthHandler(authSvc, l),
		Staff:  handler.NewStaffHandler(staffSvc, l),
		Course: handler.NewCourseHandler(courseSvc, l),
		Admin:  handler.NewAdminHandler(adminSvc, l),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	l.Info("api starting", zap.String("addr", addr), zap.String("env", cfg.App.Env))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	l.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
