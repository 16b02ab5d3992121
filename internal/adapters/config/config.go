package config

import (
	"time"

	"github.com/joho/godotenv"
)

type LedgerConfig struct {
	Username        string
	Password        string
	Hasher          string // sha256, bcrypt
	BcryptCost      int
	StockPolicy     string // checked, tracked
	Currency        string
	AuthMaxAttempts int
	AuthWindow      time.Duration
}

// HasCredentials reports whether the operator pair was configured, in which
// case the console does not prompt for it.
func (c LedgerConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

type ReportConfig struct {
	CacheTTL time.Duration
}

type RabbitMQConfig struct {
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
}

type ConsoleConfig struct {
	Style string // glamour style, empty prints raw markdown
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	Level        string
}

type Config struct {
	Ledger   LedgerConfig
	Report   ReportConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Outbox   OutboxConfig
	Console  ConsoleConfig
	Logger   LoggerConfig
}

// Ledger events are published to one exchange per entity.
var eventEntities = []string{"product", "sale", "purchase"}

func NewConfig() *Config {
	_ = godotenv.Load()

	exchangeType := getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct")
	exchangeDurable := getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true)
	exchangeAutoDelete := getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false)
	exchanges := make([]ExchangeConfig, len(eventEntities))
	for i, entity := range eventEntities {
		exchanges[i] = ExchangeConfig{
			Name:       "exchange." + entity,
			Type:       exchangeType,
			Durable:    exchangeDurable,
			AutoDelete: exchangeAutoDelete,
		}
	}

	return &Config{
		Ledger: LedgerConfig{
			Username:        getStringEnv("LEDGER_USERNAME", ""),
			Password:        getStringEnv("LEDGER_PASSWORD", ""),
			Hasher:          getStringEnv("LEDGER_HASHER", "sha256"),
			BcryptCost:      getIntEnv("LEDGER_BCRYPT_COST", 10),
			StockPolicy:     getStringEnv("LEDGER_STOCK_POLICY", "checked"),
			Currency:        getStringEnv("LEDGER_CURRENCY", "USD"),
			AuthMaxAttempts: getIntEnv("LEDGER_AUTH_MAX_ATTEMPTS", 0),
			AuthWindow:      getDurationEnv("LEDGER_AUTH_WINDOW", time.Second, 60),
		},
		Report: ReportConfig{
			CacheTTL: getDurationEnv("REPORT_CACHE_TTL", time.Second, 300),
		},
		Redis: RedisConfig{
			URL:       getStringEnv("REDIS_URL", ""),
			Password:  getStringEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			KeyPrefix: getStringEnv("REDIS_KEY_PREFIX", "inventory"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:             getStringEnv("RABBITMQ_URL", ""),
			MaxRetries:      getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:      getDurationEnv("RABBITMQ_RETRY_DELAY", time.Second, 1),
			ExchangeConfigs: exchanges,
		},
		Outbox: OutboxConfig{
			BatchSize: getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:  getDurationEnv("OUTBOX_INTERVAL", time.Millisecond, 500),
		},
		Console: ConsoleConfig{
			Style: getStringEnv("CONSOLE_STYLE", ""),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "inventory"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			Level:        getStringEnv("LOG_LEVEL", "WARN"),
		},
	}
}
