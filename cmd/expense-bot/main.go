package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/clients/groq"
	"max.ks1230/expense-analyzer/internal/clients/tg"
	"max.ks1230/expense-analyzer/internal/config"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/analysis"
	"max.ks1230/expense-analyzer/internal/model/ledger"
	"max.ks1230/expense-analyzer/internal/model/messages"
	"max.ks1230/expense-analyzer/internal/tracing"
)

const metricsShutdownTimeout = 5 * time.Second

var (
	configFile string
	envFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "expense-bot",
		Short: "Telegram expense tracker with AI spending analysis",
		Long: `Records expenses for a single session, shows category and trend reports
and asks a Groq hosted language model for a spending analysis on demand.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&configFile, "config", config.DefaultConfigFile, "path to the yaml config")
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "path to a .env file with secrets")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger.Info("Bot init - start")
	defer logger.Sync()

	conf, err := config.New(configFile, envFile)
	if err != nil {
		return errors.Wrap(err, "failed to init config")
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		return errors.Wrap(err, "failed to init tracing")
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		return errors.Wrap(err, "failed to init client")
	}

	analyzer := analysis.NewAnalyzer(conf.Groq(), conf.App(), groq.New(conf.Groq()))
	if !analyzer.Configured() {
		logger.Warn("GROQ_API_KEY is not set, analysis is disabled")
	}

	session := ledger.New()
	msgService := messages.NewService(client, session, analyzer, conf.App())

	metricsServer := startMetrics(conf.Metrics().Port())
	defer stopMetrics(metricsServer)

	logger.Info("Bot init - end")

	client.ListenUpdates(ctx, msgService)
	return nil
}

func startMetrics(port int) *http.Server {
	if port == 0 {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: metricsShutdownTimeout,
	}

	go func() {
		logger.Info("metrics server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return server
}

func stopMetrics(server *http.Server) {
	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
	}
}
