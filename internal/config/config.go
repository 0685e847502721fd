package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Postgres   PostgresConfig   `yaml:"postgres"   validate:"required"`
	Payment    PaymentConfig    `yaml:"payment"    validate:"required"`
	Reconciler ReconcilerConfig `yaml:"reconciler" validate:"required"`
	Telegram   TelegramConfig   `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"ohiplay"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type PaymentConfig struct {
	BaseURL          string        `yaml:"base_url"          env:"PAYMENT_BASE_URL"          validate:"required,url"`
	SecretKey        string        `yaml:"secret_key"        env:"PAYMENT_SECRET_KEY"        validate:"required"`
	WebhookSecret    string        `yaml:"webhook_secret"    env:"PAYMENT_WEBHOOK_SECRET"    validate:"required"`
	WebhookTolerance time.Duration `yaml:"webhook_tolerance" env:"PAYMENT_WEBHOOK_TOLERANCE" env-default:"5m" validate:"gt=0"`
	Timeout          time.Duration `yaml:"timeout"           env:"PAYMENT_TIMEOUT"           env-default:"15s" validate:"gt=0"`
	SuccessURL       string        `yaml:"success_url"       env:"PAYMENT_SUCCESS_URL"       validate:"required,url"`
	CancelURL        string        `yaml:"cancel_url"        env:"PAYMENT_CANCEL_URL"        validate:"required,url"`
}

type ReconcilerConfig struct {
	Interval   time.Duration `yaml:"interval"    env:"RECONCILER_INTERVAL"    env-default:"5m"  validate:"required,gt=0"`
	StaleAfter time.Duration `yaml:"stale_after" env:"RECONCILER_STALE_AFTER" env-default:"30m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken       string `yaml:"bot_token"        env:"TELEGRAM_BOT_TOKEN"        env-default:""`
	OperatorChatID int64  `yaml:"operator_chat_id" env:"TELEGRAM_OPERATOR_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
