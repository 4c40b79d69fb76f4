package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyLogDir string = "HEALSTEP_LOG_DIR"

	// store, DB_* names are shared with the deployment environment
	EnvKeyDBType            string = "HEALSTEP_DB_TYPE"
	EnvKeyDBPath            string = "HEALSTEP_DB_PATH"
	EnvKeyDBName            string = "DB_NAME"
	EnvKeyDBHost            string = "DB_HOST"
	EnvKeyDBUser            string = "DB_USER"
	EnvKeyDBPass            string = "DB_PASS"
	EnvKeyDBPort            string = "DB_PORT"
	EnvKeyDBSSLMode         string = "DB_SSLMODE"
	EnvKeyDBMaxOpenConns    string = "DB_MAX_OPEN_CONNS"
	EnvKeyDBMaxIdleConns    string = "DB_MAX_IDLE_CONNS"
	EnvKeyDBConnMaxLifetime string = "DB_CONN_MAX_LIFETIME"

	EnvKeyHttpHostPort string = "HEALSTEP_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "HEALSTEP_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "HEALSTEP_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "HEALSTEP_DEFAULT_BURST"

	EnvKeyMailUsername       string = "MAIL_USERNAME"
	EnvKeyMailPassword       string = "MAIL_PASSWORD"
	EnvKeyMailServer         string = "MAIL_SERVER"
	EnvKeyMailPort           string = "MAIL_PORT"
	EnvKeyMailFrom           string = "MAIL_FROM"
	EnvKeyMailStartTLS       string = "MAIL_STARTTLS"
	EnvKeyMailSSLTLS         string = "MAIL_SSL_TLS"
	EnvKeyMailUseCredentials string = "USE_CREDENTIALS"

	EnvKeyRecipientsFile     string = "HEALSTEP_RECIPIENTS_FILE"
	EnvKeyAlertRecipients    string = "HEALSTEP_ALERT_RECIPIENTS"
	EnvKeyFeedbackRecipients string = "HEALSTEP_FEEDBACK_RECIPIENTS"
	EnvKeyNotifyWorkers      string = "HEALSTEP_NOTIFY_WORKERS"
	EnvKeyNotifyQueueSize    string = "HEALSTEP_NOTIFY_QUEUE_SIZE"

	EnvKeyMqttBroker   string = "MQTT_BROKER"
	EnvKeyMqttClientID string = "MQTT_CLIENT_ID"
	EnvKeyMqttUsername string = "MQTT_USERNAME"
	EnvKeyMqttPassword string = "MQTT_PASSWORD"
	EnvKeyMqttQoS      string = "MQTT_QOS"

	LoggerNameBraceCore      string = "brace_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameGrpcServer     string = "grpc_server"
	LoggerNameMqttSubscriber string = "mqtt_subscriber"
	LoggerNameNotifier       string = "notifier"
	LoggerNameConfig         string = "config"

	LoggerFieldCategory     string = "category"
	LoggerCategoryReading   string = "reading"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryThreshold string = "threshold"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryReport    string = "report"
	LoggerCategoryRecords   string = "records"
)
