package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	monitorGrpc "liyu1981.xyz/vitals-monitor-service/pkg/grpc"
	monitorHttp "liyu1981.xyz/vitals-monitor-service/pkg/http"
	"liyu1981.xyz/vitals-monitor-service/pkg/monitor"
	"liyu1981.xyz/vitals-monitor-service/pkg/store"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	ctx := context.Background()

	var settingStore store.Store
	storeType := os.Getenv(common.EnvKeyMonitorStoreType)
	switch storeType {
	case "file":
		settingStore = store.NewGormStore(store.GetInstance(store.UseSqliteDialector()))
	case "memory":
		settingStore = store.NewGormStore(store.GetInstance(store.UseMemorySqliteDialector()))
	case "redis":
		redisStore := store.NewRedisStore(store.NewRedisClient(common.EnvOr(common.EnvKeyMonitorRedisAddr, "127.0.0.1:6379")))
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatalf("failed to reach redis: %v", err)
		}
		settingStore = redisStore
	default:
		log.Fatal("Unknown MONITOR_STORE_TYPE: " + storeType)
	}

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyMonitorGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyMonitorHttpHostPort))

	var defaultRate float64
	var defaultBurst int64
	var tickIntervalMs int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyMonitorDefaultRate), 64); err != nil {
		log.Fatal("Invalid MONITOR_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyMonitorDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid MONITOR_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	if tickIntervalMs, err = strconv.ParseInt(common.EnvOr(common.EnvKeyMonitorTickIntervalMs, "1000"), 10, 64); err != nil {
		log.Fatal("Invalid MONITOR_TICK_INTERVAL_MS, should be an int value")
	}

	autostart, _ := strconv.ParseBool(common.EnvOr(common.EnvKeyMonitorAutostart, "false"))

	logger := common.GetLogger()

	monitorCore := monitor.New(ctx, monitor.Options{
		Store:    settingStore,
		Interval: time.Duration(tickIntervalMs) * time.Millisecond,
	})

	if grpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + grpcHostPort)
		go func() {
			monitorGrpcServer := monitorGrpc.MonitorServer{
				Monitor:          monitorCore,
				RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)).
					WithPatients(monitorCore.PatientIDs()...),
			}
			interceptor := monitorGrpcServer.CreateRateLimitInterceptor([]string{
				monitorGrpc.MethodInjectEvent,
			})
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			monitorGrpc.RegisterMonitorServiceServer(s, &monitorGrpcServer)
			logger.Info("gRPC server created with:",
				zap.String("default_limiter",
					fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &monitorHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          monitorCore,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)).
			WithPatients(monitorCore.PatientIDs()...),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Int64("tick_interval_ms", tickIntervalMs))

	if autostart {
		monitorCore.Start()
	}

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
