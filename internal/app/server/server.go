package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/events"
	"plannersystem/internal/domain/payments"
	"plannersystem/internal/domain/payroll"
	"plannersystem/internal/domain/personnel"
	"plannersystem/internal/domain/suppliers"
	"plannersystem/internal/domain/workrecords"
	"plannersystem/internal/platform/config"
	"plannersystem/internal/platform/db"
	"plannersystem/internal/platform/metrics"
	"plannersystem/internal/transport/http/api"
	authhandler "plannersystem/internal/transport/http/handlers/auth"
	eventshandler "plannersystem/internal/transport/http/handlers/events"
	paymentshandler "plannersystem/internal/transport/http/handlers/payments"
	payrollhandler "plannersystem/internal/transport/http/handlers/payroll"
	personnelhandler "plannersystem/internal/transport/http/handlers/personnel"
	reportshandler "plannersystem/internal/transport/http/handlers/reports"
	suppliershandler "plannersystem/internal/transport/http/handlers/suppliers"
	workrecordshandler "plannersystem/internal/transport/http/handlers/workrecords"
	"plannersystem/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := metrics.New()

	authStore := auth.NewStore(pool)
	eventsService := events.NewService(events.NewStore(pool))
	personnelService := personnel.NewService(personnel.NewStore(pool))
	workrecordsService := workrecords.NewService(workrecords.NewStore(pool))
	paymentsStore := payments.NewStore(pool)
	suppliersService := suppliers.NewService(suppliers.NewStore(pool))
	payrollService := payroll.NewService(payroll.NewStore(pool), payrollOptions(cfg))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		eventshandler.NewHandler(eventsService, authStore).RegisterRoutes(r)
		personnelhandler.NewHandler(personnelService, authStore).RegisterRoutes(r)
		workrecordshandler.NewHandler(workrecordsService, authStore).RegisterRoutes(r)
		paymentshandler.NewHandler(paymentsStore, authStore).RegisterRoutes(r)
		suppliershandler.NewHandler(suppliersService, authStore).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, authStore, collector).RegisterRoutes(r)
		reportshandler.NewHandler(pool, authStore).RegisterRoutes(r)
	})

	log.Printf("PlannerSystem server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func payrollOptions(cfg config.Config) payroll.CalcOptions {
	opts := payroll.CalcOptions{ClampToEventPeriod: cfg.PayrollClampToEventPeriod}
	if cfg.PayrollForfeitRemainder {
		opts.RemainderPolicy = payroll.RemainderForfeit
	}
	return opts
}
