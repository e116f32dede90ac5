package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "wtms.com/wtms/internal/configs"
	httpapi "wtms.com/wtms/internal/http"
	middleware "wtms.com/wtms/internal/http/middlewares"
	repository "wtms.com/wtms/internal/repositories"
	"wtms.com/wtms/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the worker task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer logger.Sync()

		database := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)

		var redisClient rueidis.Client
		if cfg.RedisAddr != "" {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
		}

		workerRepo := repository.NewWorkerRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		submissionRepo := repository.NewSubmissionRepository(database)

		assignmentService := services.NewAssignmentService(workerRepo, taskRepo, logger)
		submissionService := services.NewSubmissionService(database, taskRepo, submissionRepo, logger)
		workerService := services.NewWorkerService(workerRepo, cfg.BcryptCost, logger)
		authService := services.NewAuthService(workerRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(assignmentService, submissionService, workerService, authService)
		httpapi.Register(e, handler, middleware.RateLimiter(redisClient, cfg.RedisRateLimitKey, cfg.RateLimit, time.Minute))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
