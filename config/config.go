package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port       string
	AggPort    string
	PublicURL  string
	LogLevel   string
	CMS        CMSConfig
	Cache      CacheConfig
	Kafka      KafkaConfig
	DB         DBConfig
	Storefront StorefrontConfig
}

type CMSConfig struct {
	BaseURL  string
	MediaURL string
	APIToken string
	Timeout  time.Duration
}

type CacheConfig struct {
	RedisHost string
	RedisPort string
	TTL       time.Duration
}

type KafkaConfig struct {
	Broker     string
	ViewsTopic string
	GroupID    string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type StorefrontConfig struct {
	FeaturedCategories []string
	PopularLimit       int
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	baseURL := strings.TrimRight(getEnv("CMS_BASE_URL", "http://localhost:1337"), "/")
	popular, err := strconv.Atoi(getEnv("POPULAR_LIMIT", "4"))
	if err != nil || popular < 0 {
		popular = 4
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		AggPort:   getEnv("AGG_PORT", "8084"),
		PublicURL: strings.TrimRight(getEnv("PUBLIC_URL", "http://localhost:8080"), "/"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		CMS: CMSConfig{
			BaseURL:  baseURL,
			MediaURL: strings.TrimRight(getEnv("CMS_MEDIA_URL", baseURL), "/"),
			APIToken: os.Getenv("CMS_API_TOKEN"),
			Timeout:  getDuration("CMS_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			RedisHost: os.Getenv("REDIS_HOST"),
			RedisPort: getEnv("REDIS_PORT", "6379"),
			TTL:       getDuration("CACHE_TTL", time.Minute),
		},
		Kafka: KafkaConfig{
			Broker:     os.Getenv("KAFKA_BROKER"),
			ViewsTopic: getEnv("KAFKA_VIEWS_TOPIC", "menu-views"),
			GroupID:    getEnv("KAFKA_GROUP_ID", "agg-svc"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "storefront"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Storefront: StorefrontConfig{
			FeaturedCategories: splitList(getEnv("FEATURED_CATEGORIES", "burgers,chicken,breakfast,mccafe")),
			PopularLimit:       popular,
		},
	}
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func MustInitPostgres(cfg DBConfig, logger *zap.Logger) *sql.DB {
	connStr := "host=" + cfg.Host + " port=" + cfg.Port + " user=" + cfg.User +
		" password=" + cfg.Password + " dbname=" + cfg.Name + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// MustInitRedis returns nil when no redis host is configured.
func MustInitRedis(cfg CacheConfig, logger *zap.Logger) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.ViewsTopic,
		GroupID: cfg.GroupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	if cfg.Broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.ViewsTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
