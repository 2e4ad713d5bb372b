package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/annonce_cancel_put"
	"marketplace/internal/handlers/rest/annonce_complete_put"
	"marketplace/internal/handlers/rest/annonce_get"
	"marketplace/internal/handlers/rest/annonce_post"
	"marketplace/internal/handlers/rest/annonce_status_patch"
	"marketplace/internal/handlers/rest/annonces_get"
	"marketplace/internal/handlers/rest/annonces_mine_get"
	"marketplace/internal/handlers/rest/colis_get"
	"marketplace/internal/handlers/rest/colis_incident_post"
	"marketplace/internal/handlers/rest/colis_incident_resolve_patch"
	"marketplace/internal/handlers/rest/colis_photo_post"
	"marketplace/internal/handlers/rest/colis_signature_post"
	"marketplace/internal/handlers/rest/colis_status_patch"
	"marketplace/internal/handlers/rest/demande_get"
	"marketplace/internal/handlers/rest/demande_post"
	"marketplace/internal/handlers/rest/demande_status_patch"
	"marketplace/internal/handlers/rest/demandes_mine_conducteur_get"
	"marketplace/internal/handlers/rest/demandes_mine_get"
	"marketplace/internal/handlers/rest/evaluation_post"
	"marketplace/internal/handlers/rest/evaluation_reply_patch"
	"marketplace/internal/handlers/rest/evaluations_conducteur_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpcclient"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.IdentityService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(&cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичное чтение: каталог активных аннонсов и оценки кондуктора
	router.Handle("/annonces", annonces_get.New(log, app.ServiceAnnonce)).Methods("GET")
	router.Handle("/evaluations/conducteur/{id}", evaluations_conducteur_get.New(log, app.ServiceEvaluation)).Methods("GET")

	// защищенные маршруты регистрируются до /annonces/{id},
	// чтобы /annonces/mine не перехватывался как {id}
	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware())

	protected.Handle("/annonces", annonce_post.New(log, app.ServiceAnnonce)).Methods("POST")
	protected.Handle("/annonces/mine", annonces_mine_get.New(log, app.ServiceAnnonce)).Methods("GET")
	protected.Handle("/annonces/{id}/status", annonce_status_patch.New(log, app.ServiceAnnonce)).Methods("PATCH")
	protected.Handle("/annonces/{id}/complete", annonce_complete_put.New(log, app.ServiceAnnonce)).Methods("PUT")
	protected.Handle("/annonces/{id}/cancel", annonce_cancel_put.New(log, app.ServiceAnnonce)).Methods("PUT")

	protected.Handle("/demandes", demande_post.New(log, app.ServiceDemande)).Methods("POST")
	protected.Handle("/demandes/mine", demandes_mine_get.New(log, app.ServiceDemande)).Methods("GET")
	protected.Handle("/demandes/mine-conducteur", demandes_mine_conducteur_get.New(log, app.ServiceDemande)).Methods("GET")
	protected.Handle("/demandes/{id}", demande_get.New(log, app.ServiceDemande)).Methods("GET")
	protected.Handle("/demandes/{id}/status", demande_status_patch.New(log, app.ServiceDemande)).Methods("PATCH")

	protected.Handle("/colis/{id}", colis_get.New(log, app.ServiceColis)).Methods("GET")
	protected.Handle("/colis/{id}/status", colis_status_patch.New(log, app.ServiceColis)).Methods("PATCH")
	protected.Handle("/colis/{id}/photos", colis_photo_post.New(log, app.ServiceColis)).Methods("POST")
	protected.Handle("/colis/{id}/signature", colis_signature_post.New(log, app.ServiceColis)).Methods("POST")
	protected.Handle("/colis/{id}/problemes", colis_incident_post.New(log, app.ServiceColis)).Methods("POST")
	protected.Handle("/colis/{id}/problemes/{problemeId}/resolve", colis_incident_resolve_patch.New(log, app.ServiceColis)).Methods("PATCH")

	protected.Handle("/evaluations", evaluation_post.New(log, app.ServiceEvaluation)).Methods("POST")
	protected.Handle("/evaluations/{id}/reply", evaluation_reply_patch.New(log, app.ServiceEvaluation)).Methods("PATCH")

	router.Handle("/annonces/{id}", annonce_get.New(log, app.ServiceAnnonce)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
