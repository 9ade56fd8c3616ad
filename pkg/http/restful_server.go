package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) CheckPatientLimiter(patientID string) bool {
	return rs.RateLimiterStore.Allow(patientID)
}

func (rs *RestfulServer) SetLimiter(patientID string, patientRate float64, patientBurst int) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	return rs.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst)
}

// RequestLogger tags every request with an X-Request-ID and logs it once the
// handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		common.GetLoggerWith(common.LoggerNameRestfulServer).Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestLogger())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rs.Server.GET("/stream", rs.Stream)

	control := rs.Server.Group("/monitor")
	{
		control.POST("/start", rs.StartMonitor)
		control.POST("/stop", rs.StopMonitor)
		control.GET("/state", rs.GetState)
	}

	rs.Server.GET("/patients", rs.GetPatients)
	patients := rs.Server.Group("/patients/:patient_id")
	{
		patients.GET("/vitals", rs.GetPatientVitals)
		patients.POST("/event", rs.InjectEvent)
		patients.POST("/limiter", rs.PostLimiter)
	}

	rules := rs.Server.Group("/rules")
	{
		rules.GET("", rs.GetRules)
		rules.PUT("", rs.PutRules)
		rules.PATCH("/:key", rs.PatchRule)
		rules.POST("/undo", rs.UndoRules)
		rules.POST("/save", rs.SaveRules)
	}

	rs.Server.GET("/alerts", rs.GetAlerts)
	rs.Server.GET("/session/metrics", rs.GetSessionMetrics)

	rs.Server.GET("/export.csv", rs.ExportCSV)
	rs.Server.GET("/export.xlsx", rs.ExportXLSX)

	rs.Server.GET("/theme", rs.GetTheme)
	rs.Server.PUT("/theme", rs.PutTheme)
}
