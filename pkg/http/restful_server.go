package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Kxngreece/Healstep-API/pkg/brace"
	"github.com/Kxngreece/Healstep-API/pkg/common"
)

type RestfulServer struct {
	Server           *gin.Engine
	Brace            *brace.Brace
	RateLimiterStore *brace.RateLimiterStore
}

func (rs *RestfulServer) CheckBraceLimiter(braceID string) bool {
	if rs.RateLimiterStore == nil {
		return true
	}
	return rs.RateLimiterStore.Allow(braceID)
}

// SetLimiter is a no-op without a limiter store.
func (rs *RestfulServer) SetLimiter(braceID string, braceRate float64, braceBurst int) error {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.SetLimiter(braceID, rate.Limit(braceRate), braceBurst)
}

// allowAllOrigins keeps the dashboard reachable from any origin.
func allowAllOrigins() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(allowAllOrigins())

	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/knee-brace", rs.PostReading)
	rs.Server.GET("/angle", rs.GetAngle)
	rs.Server.GET("/emg", rs.GetEmg)

	rs.Server.POST("/alerts", rs.PostAlert)
	rs.Server.GET("/alerts", rs.GetAlerts)
	rs.Server.GET("/alert-history", rs.GetAlerts)
	rs.Server.GET("/alert", rs.GetAlertCount)

	rs.Server.POST("/settings", rs.PostSettings)
	rs.Server.GET("/settings", rs.GetSettings)
	rs.Server.GET("/settings/:brace_id", rs.GetBraceSettings)

	rs.Server.GET("/devices", rs.GetDevices)
	rs.Server.POST("/devices", rs.PostDevice)
	rs.Server.POST("/devices/:brace_id/limiter", rs.PostLimiter)

	rs.Server.GET("/weeklyrotation", rs.GetWeeklyRotation)
	rs.Server.GET("/monthlyrotation", rs.GetMonthlyRotation)

	rs.Server.POST("/users", rs.PostUser)
	rs.Server.GET("/users", rs.GetUsers)
	rs.Server.GET("/users/:id", rs.GetUser)

	rs.Server.POST("/appointment", rs.PostAppointment)
	rs.Server.GET("/appointment", rs.GetAppointments)
	rs.Server.GET("/appointments", rs.GetAppointmentCount)

	rs.Server.POST("/feedback", rs.PostFeedback)
	rs.Server.GET("/feedback", rs.GetFeedback)
}

func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, brace.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, brace.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}

// respondList answers 404 with notFound when the list is empty.
func respondList[T any](c *gin.Context, items []T, notFound string) {
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return
	}
	c.JSON(http.StatusOK, items)
}
