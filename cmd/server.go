package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sloguard/server/config"
	"github.com/sloguard/server/internal/http"
	"github.com/sloguard/server/internal/http/handlers"
	"github.com/sloguard/server/internal/store"
	"github.com/sloguard/server/internal/tracing"
	"github.com/sloguard/server/pkg/budget"
	"github.com/sloguard/server/pkg/dashboard"
	"github.com/sloguard/server/pkg/downtime"
	"github.com/sloguard/server/pkg/slo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func buildServerCmd(logger *slog.Logger) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Runs the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			err := runServer(logger)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}

		},
	}
	return serverCmd
}

func runServer(logger *slog.Logger) error {
	file, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("fail to read configuration file: %w", err)
	}
	var config config.Configuration
	if err := yaml.Unmarshal(file, &config); err != nil {
		return fmt.Errorf("fail to parse yaml configuration file: %w", err)
	}
	stopTracing, err := tracing.Setup(context.Background(), logger, config.Tracing)
	if err != nil {
		return err
	}

	clock := func() time.Time { return time.Now().UTC() }
	memoryStore := store.New(logger)
	registry := prometheus.DefaultRegisterer.(*prometheus.Registry)
	sloService := slo.New(logger, memoryStore, clock)
	budgetService, err := budget.New(logger, memoryStore, registry, clock)
	if err != nil {
		return err
	}
	downtimeService := downtime.New(logger, memoryStore, budgetService, clock)
	dashboardService := dashboard.New(logger, sloService, budgetService, downtimeService)
	handlersBuilder := handlers.NewBuilder(sloService, downtimeService, budgetService, dashboardService)
	server, err := http.NewServer(logger, config.HTTP, registry, handlersBuilder, config.Tracing.Enabled)
	if err != nil {
		return err
	}
	signals := make(chan os.Signal, 1)
	errChan := make(chan error)

	signal.Notify(
		signals,
		syscall.SIGINT,
		syscall.SIGTERM)

	server.Start()
	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info(fmt.Sprintf("received signal %s, starting shutdown", sig))
				signal.Stop(signals)
				err := server.Stop()
				if err != nil {
					errChan <- err
				}
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := stopTracing(ctx); err != nil {
					logger.Error(fmt.Sprintf("fail to stop the trace provider: %s", err.Error()))
				}
				cancel()
				errChan <- nil
			}

		}
	}()
	exitErr := <-errChan
	return exitErr
}
