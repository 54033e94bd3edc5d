package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"oms/internal/app/config"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/infra/persistence/database"
	"oms/internal/app/infra/persistence/redis"
	"oms/internal/app/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "apiserver",
		Short:         "Order management API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(contextOf(cmd), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to config file")

	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newMigrateCmd(&configPath))
	cmd.AddCommand(newEventsCmd(&configPath))
	return cmd
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(contextOf(cmd), *configPath)
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the orders and order_items tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg.Database.AutoMigrate = false
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info("Database migrated", "driver", cfg.Database.Driver)
			return nil
		},
	}
}

func newEventsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print order change events from Redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.Redis.Addr == "" {
				return errors.New("redis.addr is not configured")
			}
			client, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return fmt.Errorf("connect redis failed: %w", err)
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			channel := mdevent.NewEventModule(nil, cfg.Redis.Channel, log).Channel()
			log.Info("Listening for order events", "channel", channel)

			out := cmd.OutOrStdout()
			err = client.Listen(ctx, channel, func(payload string) error {
				event, err := mdevent.DecodeEvent(payload)
				if err != nil {
					log.Warn("Skip malformed event", "error", err)
					return nil
				}
				fmt.Fprintf(out, "%s %-14s order=%d item=%d number=%s price=%.2f actor=%s\n",
					event.EventID, event.Type, event.OrderID, event.ItemID,
					event.OrderNumber, event.OrderPrice, event.Actor)
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// bootstrap 加载并校验配置，创建日志实例
func bootstrap(configPath string) (*config.Config, *logger.ZapLogger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger failed: %w", err)
	}
	return cfg, log, nil
}

func runServe(ctx context.Context, configPath string) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize app failed: %w", err)
	}
	defer cleanup()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		log.Info("Received shutdown signal, gracefully shutting down")
	case <-ctx.Done():
		log.Info("Context canceled, shutting down")
	case err := <-serverErrChan:
		return fmt.Errorf("http server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
		return err
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
