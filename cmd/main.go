package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	contactapp "github.com/okozak/contacts-api/application/contact"
	userapp "github.com/okozak/contacts-api/application/user"
	"github.com/okozak/contacts-api/cmd/config"
	redisclient "github.com/okozak/contacts-api/cmd/redis"
	_ "github.com/okozak/contacts-api/docs"
	contactRepo "github.com/okozak/contacts-api/repository/contact"
	redisRepo "github.com/okozak/contacts-api/repository/redis"
	userRepo "github.com/okozak/contacts-api/repository/user"
	"github.com/okozak/contacts-api/transport"
	"github.com/okozak/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// @title CONTACTS API
// @version 1.0
// @description Contacts management API with JWT authentication
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ContactApp := contactapp.NewContactApp(ContactRepo)

	limiter := transport.NewRateLimiter(cfg, RedisRepo)
	httpTransport := transport.NewTransport(cfg, UserApp, ContactApp, limiter)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
