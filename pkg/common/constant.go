package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyMonitorStoreType string = "MONITOR_STORE_TYPE"
	EnvKeyMonitorDbPath    string = "MONITOR_DB_PATH"
	EnvKeyMonitorRedisAddr string = "MONITOR_REDIS_ADDR"
	EnvKeyMonitorLogDir    string = "MONITOR_LOG_DIR"

	EnvKeyMonitorHttpHostPort string = "MONITOR_HTTP_HOST_PORT"
	EnvKeyMonitorGrpcHostPort string = "MONITOR_GRPC_HOST_PORT"

	EnvKeyMonitorDefaultRate  string = "MONITOR_DEFAULT_RATE"
	EnvKeyMonitorDefaultBurst string = "MONITOR_DEFAULT_BURST"

	EnvKeyMonitorTickIntervalMs string = "MONITOR_TICK_INTERVAL_MS"
	EnvKeyMonitorAutostart      string = "MONITOR_AUTOSTART"

	LoggerNameMonitor          string = "monitor"
	LoggerNameStore            string = "store"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerNameGrpcServer       string = "grpc_server"
	LoggerFieldCategory        string = "category"
	LoggerCategoryTick         string = "tick"
	LoggerCategoryAlert        string = "alert"
	LoggerCategoryRules        string = "rules"
	LoggerCategoryEvent        string = "event"
	LoggerCategoryExport       string = "export"
	LoggerCategoryStoreSetting string = "setting"
)
