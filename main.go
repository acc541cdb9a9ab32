package main

import (
	"catalog-backend/config"
	"catalog-backend/repositories"
	"catalog-backend/routes"
	"catalog-backend/services"
	"catalog-backend/utils"
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Env, cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("catalog backend stopped", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.PasswordCost = cfg.Auth.BcryptCost

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.PingTimeout)
	err = sqlDB.PingContext(ctx)
	cancel()
	if err != nil {
		return errors.Annotate(err, "database not reachable")
	}

	if err := config.Migrate(db); err != nil {
		return err
	}

	repos := repositories.New(db)
	serviceManager := services.NewServiceManager(repos, logger)
	detailManager := services.NewServiceDetailManager(repos, logger)

	audit := services.NewCatalogAuditService(repos.Services, logger)
	if err := audit.StartScheduler(cfg.Audit.Schedule); err != nil {
		return err
	}
	defer audit.Stop()

	r := routes.SetupRouter(routes.Dependencies{
		Config:         cfg,
		Logger:         logger,
		Repos:          repos,
		Services:       serviceManager,
		ServiceDetails: detailManager,
	})
	printRoutes(logger, r)

	logger.Info("listening", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))
	return r.Run(":" + cfg.Server.Port)
}

func printRoutes(logger *zap.Logger, r *gin.Engine) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
