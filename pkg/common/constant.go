package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHealthDBType string = "HEALTH_DB_TYPE"
	EnvKeyHealthDbPath string = "HEALTH_DB_PATH"
	EnvKeyHealthDbDSN  string = "HEALTH_DB_DSN"

	EnvKeyHealthHttpHostPort string = "HEALTH_HTTP_HOST_PORT"
	EnvKeyHealthGrpcHostPort string = "HEALTH_GRPC_HOST_PORT"

	EnvKeyHealthDefaultRate  string = "HEALTH_DEFAULT_RATE"
	EnvKeyHealthDefaultBurst string = "HEALTH_DEFAULT_BURST"

	EnvKeyHealthExactAlarms   string = "HEALTH_EXACT_ALARMS"
	EnvKeyHealthNotifications string = "HEALTH_NOTIFICATIONS"
	EnvKeyHealthTimezone      string = "HEALTH_TIMEZONE"
	EnvKeyHealthEventQueue    string = "HEALTH_EVENT_QUEUE_SIZE"

	EnvKeyHealthLogDir        string = "HEALTH_LOG_DIR"
	EnvKeyHealthLogLevel      string = "HEALTH_LOG_LEVEL"
	EnvKeyHealthLogMaxSizeMB  string = "HEALTH_LOG_MAX_SIZE_MB"
	EnvKeyHealthLogMaxBackups string = "HEALTH_LOG_MAX_BACKUPS"
	EnvKeyHealthLogMaxAgeDays string = "HEALTH_LOG_MAX_AGE_DAYS"

	LoggerNameTrackerCore   string = "tracker_core"
	LoggerNameStore         string = "store"
	LoggerNameReminder      string = "reminder"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"

	LoggerFieldCategory string = "category"

	LoggerCategoryProfile    string = "profile"
	LoggerCategoryReading    string = "reading"
	LoggerCategoryMedication string = "medication"
	LoggerCategorySchedule   string = "schedule"
	LoggerCategoryLog        string = "log"
	LoggerCategoryAnalysis   string = "analysis"
	LoggerCategoryAlarm      string = "alarm"
	LoggerCategoryNotifier   string = "notifier"
	LoggerCategoryDispatcher string = "dispatcher"
)
