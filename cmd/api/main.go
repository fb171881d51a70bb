package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"heart-risk/internal/config"
	"heart-risk/internal/db"
	apihttp "heart-risk/internal/http"
	"heart-risk/internal/metrics"
	"heart-risk/internal/predictor"
	"heart-risk/internal/repository"
	"heart-risk/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		logger.Fatal("metrics init", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	healthRepo := repository.NewPgHealthRepository(pool)
	predictorClient := predictor.NewHTTPClient(
		cfg.PredictorBaseURL,
		cfg.PredictorAPIKey,
		time.Duration(cfg.PredictorTimeoutSeconds)*time.Second,
		logger,
	)

	loginWindow := time.Duration(cfg.LoginWindowMinutes) * time.Minute
	var (
		loginLimiter service.LoginRateLimiter
		tokenStore   service.RefreshTokenStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, loginWindow, cfg.LoginMaxAttempts)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if loginLimiter == nil {
		loginLimiter = service.NewLoginRateLimiter(loginWindow, cfg.LoginMaxAttempts)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo, loginLimiter)
	loader := service.NewProfileLoader(healthRepo, logger, recorder)
	presenter := service.NewRiskPresenter(predictorClient, healthRepo, logger, recorder)

	router := apihttp.NewRouter(
		logger,
		apihttp.RouterOptions{
			JWT:            jwtSvc,
			Metrics:        recorder,
			Gatherer:       registry,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		apihttp.NewAuthHandler(logger, userSvc, jwtSvc),
		apihttp.NewAnalysisHandler(logger, loader, presenter),
		apihttp.NewHealthRecordHandler(logger, healthRepo),
		apihttp.NewSystemHandler(logger, pool),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
