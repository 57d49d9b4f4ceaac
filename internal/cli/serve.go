package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"dishlist/backend/internal/cache"
	"dishlist/backend/internal/database"
	"dishlist/backend/internal/handler"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "run database migrations before serving")
	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, migrate bool) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if migrate {
		if err := database.Migrate(db, log); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	var tagCache cache.TagCache = cache.Noop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisTagCache(ctx, cfg.RedisURL, cfg.TagCacheTTL, log)
		if err != nil {
			log.WithError(err).Warn("Tag cache disabled")
		} else {
			defer redisCache.Close()
			tagCache = redisCache
		}
	}

	router := handler.NewRouter(handler.RouterConfig{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		TagCache:  tagCache,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server is running")
		log.Infof("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
