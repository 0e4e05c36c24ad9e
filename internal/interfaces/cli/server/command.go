package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	announcementApp "noticeboard/internal/application/announcement"
	categoryApp "noticeboard/internal/application/category"
	"noticeboard/internal/infrastructure/config"
	"noticeboard/internal/infrastructure/database"
	"noticeboard/internal/infrastructure/migration"
	"noticeboard/internal/infrastructure/repository"
	"noticeboard/internal/interfaces/graphql"
	httpRouter "noticeboard/internal/interfaces/http"
	"noticeboard/internal/interfaces/http/handlers"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/goroutine"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/services/markdown"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the noticeboard GraphQL server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(mapEnvToGinMode(env), configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg.Database.Driver, log); err != nil {
		return err
	}

	txMgr := db.NewTransactionManager(database.Get())
	announcementRepo := repository.NewAnnouncementRepository(database.Get())
	categoryRepo := repository.NewCategoryRepository(database.Get())

	announcementService := announcementApp.NewServiceDDD(announcementRepo, txMgr, markdown.NewMarkdownService(), log.Named("announcement"))
	categoryService := categoryApp.NewServiceDDD(categoryRepo, txMgr, log.Named("category"))

	resolver := graphql.NewResolver(
		announcementService,
		categoryService,
		graphql.NewErrorTranslator(log.Named("graphql")),
		cfg.Pagination,
	)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		return fmt.Errorf("failed to build graphql schema: %w", err)
	}

	router := httpRouter.NewRouter(
		handlers.NewGraphQLHandler(schema, cfg.Server.GraphQLPlayground, log.Named("graphql")),
		handlers.NewHealthHandler(handlers.PingerFunc(database.Ping), log),
		cfg.Server,
		log.Named("http"),
	)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	serverDone := goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode,
			"graphql_playground", cfg.Server.GraphQLPlayground)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("server failed", "error", err)
		return fmt.Errorf("server failed: %w", err)
	case err, ok := <-serverDone:
		if ok {
			return err
		}
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(driver string, log logger.Interface) error {
	if autoMigrate {
		log.Infow("applying pending migrations")
		if err := migration.Up(database.Get(), driver, log); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("migrations applied")
		return nil
	}

	strategy, err := migration.NewGooseStrategy(driver, migration.DefaultScriptsDir, log)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	if version == 0 {
		log.Warnw("database has no migrations applied, run `noticeboard migrate up` or start with --auto-migrate")
		return nil
	}

	log.Infow("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
