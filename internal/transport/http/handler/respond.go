package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-api/internal/domain"
)

// fail 业务错误按 taxonomy 映射状态码；内部错误只记日志，对外一律 Server error
func fail(c *gin.Context, log *zap.Logger, err error) {
	var de *domain.Error
	if errors.As(err, &de) && de.Code < 500 {
		c.JSON(de.Code, gin.H{"message": de.Msg})
		return
	}
	log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
