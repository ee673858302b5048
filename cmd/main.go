package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Single-screen currency converter backed by exchangerate-api.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat,
		rateAPIURL, rateAPIKey, rateTimeoutSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFormat,
		rateAPIURL, rateAPIKey, rateTimeoutSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, rate provider and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFormat string,
	rateAPIURL, rateAPIKey string, rateTimeoutSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)

	// Rate provider config
	rateAPIURL = getEnv("EXCHANGE_RATE_API_URL", facades.DefaultExchangeRateAPIURL)
	rateAPIKey = getEnv("EXCHANGE_RATE_API_KEY", "")
	if rateTimeoutSecond, err = strconv.Atoi(getEnv("EXCHANGE_RATE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Kafka config, publishing is disabled without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "currency-conversions")

	return
}

// newRouter builds the HTTP surface of the converter.
func newRouter(conv handlers.Converter, m *metrics.Metrics, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(m))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterConverterRoutes(r, conv)
	})

	r.Get("/health", handlers.NewHealthHandler())
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, rate provider, optional Kafka publisher and HTTP server.
// It performs the start-up conversion and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFormat string,
	rateAPIURL, rateAPIKey string, rateTimeoutSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	if rateAPIKey == "" {
		log.Warn("EXCHANGE_RATE_API_KEY is empty, rate requests will be rejected by the provider")
	}
	rates := facades.NewExchangeRateAPIFacade(rateAPIURL, rateAPIKey, time.Duration(rateTimeoutSecond)*time.Second)

	m := metrics.New()
	opts := []services.ConverterOption{services.WithRecorder(m)}

	// Connect Kafka writer
	if len(kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		publisher := services.NewKafkaConversionPublisher(writer)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		opts = append(opts, services.WithPublisher(publisher))
		log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	} else {
		log.Info("Kafka brokers not configured, conversions will not be published")
	}

	conv := services.NewConverter(rates, services.NewLogAlerter(), opts...)

	// Initial conversion with the default inputs
	if err := conv.Start(ctx); err != nil {
		log.Warnw("initial conversion failed", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           newRouter(conv, m, fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serveDone := make(chan struct{})
	go func() {
		defer close(serveDone)
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	<-serveDone

	log.Info("HTTP server stopped gracefully")
	return nil
}
