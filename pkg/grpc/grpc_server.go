package grpc

import (
	"golang.org/x/time/rate"

	"liyu1981.xyz/vitals-monitor-service/pkg/monitor"
)

type MonitorServer struct {
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
}

func (s *MonitorServer) GetLimiter(patientID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(patientID)
	}
}

func (s *MonitorServer) CheckPatientLimiter(patientID string) bool {
	limiter := s.GetLimiter(patientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
