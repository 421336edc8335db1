package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Catalog store
	Postgres PostgresConfig

	// Redis - Search result cache
	Redis RedisConfig

	// Kafka - Search event stream
	Kafka KafkaConfig

	// JWT - Caller identity (verify only)
	JWT JWTConfig

	// Search - Ranking weights and thresholds
	Search SearchConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// JWTConfig is used to verify tokens issued by the identity service.
// This service does not issue tokens.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       int // in seconds
}

// SearchConfig carries the tunable ranking weights and thresholds.
// The defaults reproduce the contracted ranking order; deployments may
// adjust them without code changes.
type SearchConfig struct {
	LexicalWeight    float64
	NameSimWeight    float64
	PrefixSimWeight  float64
	PhoneticWeight   float64
	BrandSimWeight   float64
	ClickWeight      float64
	ViewWeight       float64
	RatingWeight     float64
	NameSimThreshold float64
	PrefixThreshold  float64
	BrandThreshold   float64
	CacheTTLSeconds  int
}

// DiscordConfig is the configuration for the Discord alert webhook.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("search-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/search-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - env vars are enough for containers)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Catalog store
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Search result cache
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Search event stream
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// JWT - Caller identity
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Search - Ranking weights and thresholds
	cfg.Search.LexicalWeight = viper.GetFloat64("search.lexical_weight")
	cfg.Search.NameSimWeight = viper.GetFloat64("search.name_sim_weight")
	cfg.Search.PrefixSimWeight = viper.GetFloat64("search.prefix_sim_weight")
	cfg.Search.PhoneticWeight = viper.GetFloat64("search.phonetic_weight")
	cfg.Search.BrandSimWeight = viper.GetFloat64("search.brand_sim_weight")
	cfg.Search.ClickWeight = viper.GetFloat64("search.click_weight")
	cfg.Search.ViewWeight = viper.GetFloat64("search.view_weight")
	cfg.Search.RatingWeight = viper.GetFloat64("search.rating_weight")
	cfg.Search.NameSimThreshold = viper.GetFloat64("search.name_sim_threshold")
	cfg.Search.PrefixThreshold = viper.GetFloat64("search.prefix_threshold")
	cfg.Search.BrandThreshold = viper.GetFloat64("search.brand_threshold")
	cfg.Search.CacheTTLSeconds = viper.GetInt("search.cache_ttl_seconds")

	// Discord - Monitoring (optional)
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "public")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "search.performed")
	viper.SetDefault("kafka.group_id", "search-srv-history")

	viper.SetDefault("jwt.ttl", 3600)

	// Ranking weights. Empirically chosen; the relative order is the
	// contract, the absolute values are tunable.
	viper.SetDefault("search.lexical_weight", 10.0)
	viper.SetDefault("search.name_sim_weight", 5.0)
	viper.SetDefault("search.prefix_sim_weight", 3.0)
	viper.SetDefault("search.phonetic_weight", 2.0)
	viper.SetDefault("search.brand_sim_weight", 2.0)
	viper.SetDefault("search.click_weight", 0.01)
	viper.SetDefault("search.view_weight", 0.005)
	viper.SetDefault("search.rating_weight", 0.5)
	viper.SetDefault("search.name_sim_threshold", 0.15)
	viper.SetDefault("search.prefix_threshold", 0.5)
	viper.SetDefault("search.brand_threshold", 0.3)
	viper.SetDefault("search.cache_ttl_seconds", 300)
}
