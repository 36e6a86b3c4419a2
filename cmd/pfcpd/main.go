// Command pfcpd is an example UPF-side PFCP node built on this
// module's codec: a UDP N4 listener, an in-memory session table, and
// the ambient stack (zap, Prometheus, OpenTelemetry, chi) the teacher
// repo's network functions all carry.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/pfcp/common/metrics"
	"github.com/your-org/pfcp/internal/pfcpd/config"
	"github.com/your-org/pfcp/internal/pfcpd/debugapi"
	"github.com/your-org/pfcp/internal/pfcpd/server"
	"github.com/your-org/pfcp/internal/pfcpd/session"
	"github.com/your-org/pfcp/internal/pfcpd/usagerecorder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version    = "dev"
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:   "pfcpd",
		Short: "example UPF-side PFCP node",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "cmd/pfcpd/config/pfcpd.yaml", "path to configuration file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	logger.Info("starting pfcpd", zap.String("version", version))

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded",
		zap.String("pfcp_bind", cfg.Address()),
		zap.String("node_id", cfg.Node.NodeID),
		zap.String("instance_id", cfg.Node.InstanceID))

	sessions := session.NewTable()

	var recorder *usagerecorder.Recorder
	if cfg.ClickHouse.Enabled {
		recorder, err = usagerecorder.New(cfg.ClickHouse.DSN, cfg.ClickHouse.Database, cfg.ClickHouse.Table, logger)
		if err != nil {
			logger.Error("failed to start usage recorder, continuing without it", zap.Error(err))
			recorder = nil
		}
	}

	pfcpServer := server.New(cfg, sessions, recorder, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if recorder != nil {
		go recorder.Run(ctx)
		defer recorder.Close()
	}

	if cfg.Observability.Metrics.Enabled {
		metricsServer := metrics.NewMetricsServer(cfg.Observability.Metrics.Port, logger)
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server error", zap.Error(err))
			}
		}()
		defer metricsServer.Stop()
		metrics.SetServiceUp(true)
		defer metrics.SetServiceUp(false)
	}

	var debugServer *http.Server
	if cfg.Observability.Debug.Enabled {
		router := debugapi.New(sessions, logger)
		debugServer = &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Observability.Debug.Port),
			Handler:      router.Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("starting pfcpd debug server", zap.Int("port", cfg.Observability.Debug.Port))
			if err := debugServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("debug server error", zap.Error(err))
			}
		}()
	}

	pfcpErrChan := make(chan error, 1)
	go func() {
		if err := pfcpServer.Start(ctx); err != nil {
			pfcpErrChan <- fmt.Errorf("PFCP server error: %w", err)
		}
	}()

	logger.Info("pfcpd started successfully", zap.String("pfcp_address", cfg.Address()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-pfcpErrChan:
		logger.Error("PFCP server failed", zap.Error(err))
	}

	logger.Info("shutting down pfcpd...")
	cancel()

	if debugServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := debugServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error stopping debug server", zap.Error(err))
		}
	}

	logger.Info("pfcpd shutdown complete")
	return nil
}

func newLogger() *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := cfg.Build()
	return logger
}
