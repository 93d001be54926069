package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultGatewayAddr   = "https://app.sandbox.midtrans.com"
	defaultRedisAddr     = "localhost:6379"
	defaultKafkaBrokers  = "localhost:9092"
	defaultNotifyTopic   = "coopmart-notifications"
	defaultLogLevel      = "debug"

	defaultCheckoutRateLimit  = 10
	defaultCheckoutRateWindow = time.Minute
)

type Config struct {
	ServerAddr       string
	DatabaseDSN      string
	GatewayAddr      string
	GatewayServerKey string
	AuthTokenKey     string
	RedisAddr        string
	KafkaBrokers     []string
	NotifyTopic      string
	FinishURL        string
	CheckoutLimit    int
	CheckoutWindow   time.Duration
	LogLevel         string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			CheckoutLimit:  defaultCheckoutRateLimit,
			CheckoutWindow: defaultCheckoutRateWindow,
		}

		var brokers string

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "coopmart server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "coopmart database DSN")
		flag.StringVar(&cfg.GatewayAddr, "g", defaultGatewayAddr, "payment gateway address")
		flag.StringVar(&cfg.RedisAddr, "r", defaultRedisAddr, "redis address")
		flag.StringVar(&brokers, "b", defaultKafkaBrokers, "kafka brokers (comma separated)")
		flag.StringVar(&cfg.NotifyTopic, "t", defaultNotifyTopic, "notification topic")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if databaseURIEnv := os.Getenv("DATABASE_URI"); databaseURIEnv != "" {
			cfg.DatabaseDSN = databaseURIEnv
		}
		if gatewayAddrEnv := os.Getenv("GATEWAY_ADDRESS"); gatewayAddrEnv != "" {
			cfg.GatewayAddr = gatewayAddrEnv
		}
		if redisAddrEnv := os.Getenv("REDIS_ADDR"); redisAddrEnv != "" {
			cfg.RedisAddr = redisAddrEnv
		}
		if brokersEnv := os.Getenv("KAFKA_BROKERS"); brokersEnv != "" {
			brokers = brokersEnv
		}
		if topicEnv := os.Getenv("NOTIFY_TOPIC"); topicEnv != "" {
			cfg.NotifyTopic = topicEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if limitEnv := os.Getenv("CHECKOUT_RATE_LIMIT"); limitEnv != "" {
			if limit, err := strconv.Atoi(limitEnv); err == nil && limit > 0 {
				cfg.CheckoutLimit = limit
			}
		}

		// secrets come from the environment only
		cfg.GatewayServerKey = os.Getenv("GATEWAY_SERVER_KEY")
		cfg.AuthTokenKey = os.Getenv("AUTH_TOKEN_KEY")
		cfg.FinishURL = os.Getenv("PAYMENT_FINISH_URL")

		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
