package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cvnest.backend/internal/config"
	"cvnest.backend/internal/infrastructure/ai"
	"cvnest.backend/internal/infrastructure/botcheck"
	"cvnest.backend/internal/infrastructure/email"
	"cvnest.backend/internal/infrastructure/jobs"
	"cvnest.backend/internal/infrastructure/messaging"
	"cvnest.backend/internal/infrastructure/repositories"
	"cvnest.backend/internal/interfaces/http/handlers"
	"cvnest.backend/internal/usecases"
	"cvnest.backend/pkg/jwt"
	"cvnest.backend/pkg/logger"
	"cvnest.backend/pkg/redis"
)

const verificationSweepInterval = 5 * time.Minute

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	verifRepo := repositories.NewVerificationRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// External services
	gateway := messaging.NewWhatsAppGateway(cfg.WhatsApp.GatewayURL, cfg.WhatsApp.APIKey, cfg.WhatsApp.SendTimeout)
	botChecker := botcheck.NewClient(cfg.BotCheck.URL, cfg.BotCheck.APIKey, cfg.BotCheck.Timeout)
	emailSender := email.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	completer := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, verifRepo, gateway, botChecker, emailSender, jwtService, cfg.WhatsApp.CountryCode)
	resumeUsecase := usecases.NewResumeUsecase(resumeRepo, completer)
	jobUsecase := usecases.NewJobUsecase(jobRepo)
	subscriptionUsecase := usecases.NewSubscriptionUsecase(planRepo, saleRepo, couponRepo, userRepo)
	chatUsecase := usecases.NewChatUsecase(chatRepo, completer)
	adminUsecase := usecases.NewAdminUsecase(userRepo, saleRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	resumeHandler := handlers.NewResumeHandler(resumeUsecase)
	jobHandler := handlers.NewJobHandler(jobUsecase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Background work
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go gateway.Supervise(ctx, cfg.WhatsApp.PollInterval)

	expiryJob := jobs.NewVerificationExpiryJob(verifRepo, verificationSweepInterval)
	go expiryJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewareStack()...)

	applyCORSMiddleware(r)
	registerHealthRoute(r, gateway)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		resumeHandler:       resumeHandler,
		jobHandler:          jobHandler,
		subscriptionHandler: subscriptionHandler,
		chatHandler:         chatHandler,
		adminHandler:        adminHandler,
		jwtService:          jwtService,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("CVNest backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
