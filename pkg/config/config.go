package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/joho/godotenv"
)

const (
	DefaultHttpHostPort    = ":1080"
	DefaultRate            = 10.0
	DefaultBurst           = 20
	DefaultNotifyWorkers   = 2
	DefaultNotifyQueueSize = 256
	DefaultMailPort        = 587
	DefaultPostgresPort    = 5432
	DefaultMysqlPort       = 3306
	DefaultMqttQoS         = 1
)

type StoreConfig struct {
	// Type is one of: postgres | mysql | file | memory
	Type     string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// GetDSN returns the connection string for the network dialects.
func (s StoreConfig) GetDSN() string {
	switch s.Type {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			dsnValue(s.Host), s.Port, dsnValue(s.User), dsnValue(s.Password), dsnValue(s.Name), dsnValue(s.SSLMode))
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			s.User, s.Password, s.Host, s.Port, s.Name)
	case "file":
		return s.Path
	default:
		return ""
	}
}

// dsnValue quotes a libpq keyword/value when it is empty or holds
// whitespace, quotes or backslashes.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\r\v\f'\\") {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

type MailConfig struct {
	Server         string
	Port           int
	Username       string
	Password       string
	From           string
	StartTLS       bool
	SSLTLS         bool
	UseCredentials bool
}

// Enabled reports whether a mail gateway is configured at all.
func (m MailConfig) Enabled() bool {
	return m.Server != ""
}

type MqttConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

type NotifyConfig struct {
	Workers   int
	QueueSize int
	// RecipientsFile is optional, the env lists are used when it is empty.
	RecipientsFile string
	Recipients     Recipients
}

type Config struct {
	Store        StoreConfig
	HttpHostPort string
	GrpcHostPort string
	DefaultRate  float64
	DefaultBurst int
	Mail         MailConfig
	Mqtt         MqttConfig
	Notify       NotifyConfig
}

// Load reads the given .env files (".env" when none given) and then the
// process environment. A missing .env file is only an error in development.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if common.IsDevelopment() {
			return nil, fmt.Errorf("error loading .env file, copy .env.example to .env first if in development: %w", err)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	var err error
	cfg := &Config{
		HttpHostPort: common.EnvString(common.EnvKeyHttpHostPort, DefaultHttpHostPort),
		GrpcHostPort: common.EnvString(common.EnvKeyGrpcHostPort, ""),
	}

	if cfg.DefaultRate, err = common.EnvFloat(common.EnvKeyDefaultRate, DefaultRate); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", common.EnvKeyDefaultRate, err)
	}
	if cfg.DefaultBurst, err = common.EnvInt(common.EnvKeyDefaultBurst, DefaultBurst); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", common.EnvKeyDefaultBurst, err)
	}

	if cfg.Store, err = storeFromEnv(); err != nil {
		return nil, err
	}
	if cfg.Mail, err = mailFromEnv(); err != nil {
		return nil, err
	}
	if cfg.Mqtt, err = mqttFromEnv(); err != nil {
		return nil, err
	}
	if cfg.Notify, err = notifyFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func storeFromEnv() (StoreConfig, error) {
	var err error
	store := StoreConfig{
		Type:     common.EnvString(common.EnvKeyDBType, "postgres"),
		Path:     common.EnvString(common.EnvKeyDBPath, "healstep.db"),
		Host:     common.EnvString(common.EnvKeyDBHost, "localhost"),
		User:     common.EnvString(common.EnvKeyDBUser, ""),
		Password: common.EnvString(common.EnvKeyDBPass, ""),
		Name:     common.EnvString(common.EnvKeyDBName, ""),
		SSLMode:  common.EnvString(common.EnvKeyDBSSLMode, "disable"),
	}

	defaultPort := DefaultPostgresPort
	if store.Type == "mysql" {
		defaultPort = DefaultMysqlPort
	}
	if store.Port, err = common.EnvInt(common.EnvKeyDBPort, defaultPort); err != nil {
		return store, fmt.Errorf("invalid %s: %w", common.EnvKeyDBPort, err)
	}
	if store.MaxOpenConns, err = common.EnvInt(common.EnvKeyDBMaxOpenConns, 10); err != nil {
		return store, fmt.Errorf("invalid %s: %w", common.EnvKeyDBMaxOpenConns, err)
	}
	if store.MaxIdleConns, err = common.EnvInt(common.EnvKeyDBMaxIdleConns, 5); err != nil {
		return store, fmt.Errorf("invalid %s: %w", common.EnvKeyDBMaxIdleConns, err)
	}

	lifetime := common.EnvString(common.EnvKeyDBConnMaxLifetime, "30m")
	if store.ConnMaxLifetime, err = time.ParseDuration(lifetime); err != nil {
		return store, fmt.Errorf("invalid %s: %w", common.EnvKeyDBConnMaxLifetime, err)
	}
	return store, nil
}

func mailFromEnv() (MailConfig, error) {
	var err error
	mail := MailConfig{
		Server:   common.EnvString(common.EnvKeyMailServer, ""),
		Username: common.EnvString(common.EnvKeyMailUsername, ""),
		Password: common.EnvString(common.EnvKeyMailPassword, ""),
		From:     common.EnvString(common.EnvKeyMailFrom, ""),
	}
	if mail.Port, err = common.EnvInt(common.EnvKeyMailPort, DefaultMailPort); err != nil {
		return mail, fmt.Errorf("invalid %s: %w", common.EnvKeyMailPort, err)
	}
	if mail.StartTLS, err = common.EnvBool(common.EnvKeyMailStartTLS, true); err != nil {
		return mail, fmt.Errorf("invalid %s: %w", common.EnvKeyMailStartTLS, err)
	}
	if mail.SSLTLS, err = common.EnvBool(common.EnvKeyMailSSLTLS, false); err != nil {
		return mail, fmt.Errorf("invalid %s: %w", common.EnvKeyMailSSLTLS, err)
	}
	if mail.UseCredentials, err = common.EnvBool(common.EnvKeyMailUseCredentials, true); err != nil {
		return mail, fmt.Errorf("invalid %s: %w", common.EnvKeyMailUseCredentials, err)
	}
	return mail, nil
}

func mqttFromEnv() (MqttConfig, error) {
	mqtt := MqttConfig{
		Broker:   common.EnvString(common.EnvKeyMqttBroker, ""),
		ClientID: common.EnvString(common.EnvKeyMqttClientID, "healstep-api"),
		Username: common.EnvString(common.EnvKeyMqttUsername, ""),
		Password: common.EnvString(common.EnvKeyMqttPassword, ""),
	}
	qos, err := common.EnvInt(common.EnvKeyMqttQoS, DefaultMqttQoS)
	if err != nil || qos < 0 || qos > 2 {
		return mqtt, fmt.Errorf("invalid %s, should be 0, 1 or 2", common.EnvKeyMqttQoS)
	}
	mqtt.QoS = byte(qos)
	return mqtt, nil
}

func notifyFromEnv() (NotifyConfig, error) {
	var err error
	notify := NotifyConfig{
		RecipientsFile: common.EnvString(common.EnvKeyRecipientsFile, ""),
		Recipients: Recipients{
			Alerts:   common.SplitList(os.Getenv(common.EnvKeyAlertRecipients)),
			Feedback: common.SplitList(os.Getenv(common.EnvKeyFeedbackRecipients)),
		},
	}
	if notify.Workers, err = common.EnvInt(common.EnvKeyNotifyWorkers, DefaultNotifyWorkers); err != nil {
		return notify, fmt.Errorf("invalid %s: %w", common.EnvKeyNotifyWorkers, err)
	}
	if notify.QueueSize, err = common.EnvInt(common.EnvKeyNotifyQueueSize, DefaultNotifyQueueSize); err != nil {
		return notify, fmt.Errorf("invalid %s: %w", common.EnvKeyNotifyQueueSize, err)
	}

	if notify.RecipientsFile != "" {
		recipients, err := LoadRecipients(notify.RecipientsFile)
		if err != nil {
			return notify, err
		}
		notify.Recipients = *recipients
	}
	return notify, nil
}

func (c *Config) Validate() error {
	switch c.Store.Type {
	case "postgres", "mysql":
		if c.Store.Host == "" {
			return fmt.Errorf("%s host is required", c.Store.Type)
		}
		if c.Store.User == "" {
			return fmt.Errorf("%s user is required", c.Store.Type)
		}
		if c.Store.Name == "" {
			return fmt.Errorf("%s database name is required", c.Store.Type)
		}
	case "file":
		if c.Store.Path == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown %s: %s", common.EnvKeyDBType, c.Store.Type)
	}

	if c.Mail.Enabled() && strings.TrimSpace(c.Mail.From) == "" {
		return fmt.Errorf("%s is required when %s is set", common.EnvKeyMailFrom, common.EnvKeyMailServer)
	}
	if c.Mail.UseCredentials && c.Mail.Enabled() && c.Mail.Username == "" {
		return fmt.Errorf("%s is required when %s is true", common.EnvKeyMailUsername, common.EnvKeyMailUseCredentials)
	}
	if c.Notify.Workers <= 0 {
		return fmt.Errorf("%s must be positive", common.EnvKeyNotifyWorkers)
	}
	if c.Notify.QueueSize <= 0 {
		return fmt.Errorf("%s must be positive", common.EnvKeyNotifyQueueSize)
	}
	return nil
}
