package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"search-srv/config"
	"search-srv/pkg/discord"
	pkgJWT "search-srv/pkg/jwt"
	"search-srv/pkg/kafka"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	kafkaProducer kafka.IProducer

	// Caller identity (verify only)
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	KafkaProducer kafka.IProducer

	// Caller identity (verify only)
	Config     *config.Config
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Infrastructure clients
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		// Caller identity
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	// kafkaProducer is optional; without it search events are not published

	// Caller identity
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Monitoring & Notification Configuration (optional)

	return nil
}
