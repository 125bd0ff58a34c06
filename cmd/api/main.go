package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/xavierca1/cirkidz-admin/internal/clock"
	"github.com/xavierca1/cirkidz-admin/internal/config"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
	"github.com/xavierca1/cirkidz-admin/internal/infra/http/handlers"
	"github.com/xavierca1/cirkidz-admin/internal/infra/http/middleware"
	"github.com/xavierca1/cirkidz-admin/internal/infra/mail"
	"github.com/xavierca1/cirkidz-admin/internal/infra/notify"
	"github.com/xavierca1/cirkidz-admin/internal/infra/queue"
	"github.com/xavierca1/cirkidz-admin/internal/infra/worker"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	log.SetPrefix("[CONSOLE] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.BindFlags(pflag.CommandLine)
	pflag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Store
	seed, err := database.LoadSeed(cfg.App.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}
	store := database.NewDemoStore(seed)
	log.Printf("📦 Demo store loaded: %v", store.Counts())

	// 2. Notifications and events
	realClock := clock.Real()
	toasts := notify.NewToastQueue(realClock, cfg.App.ToastTTL)
	notifier := notify.Multi{toasts, notify.LogNotifier{}}

	var (
		publisher usecase.EventPublisher = queue.LogPublisher{}
		broker    handlers.BrokerStatus
	)
	if cfg.Queue.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()

		producer := queue.NewProducer(rabbitMQ.Ch)
		producer.ReportError = middleware.RecordIntegrationError
		publisher = producer
		broker = rabbitMQ

		if cfg.Email.MailEnabled() {
			mailSender := mail.NewEmailSender(
				cfg.Email.Host, cfg.Email.Port, cfg.Email.User, cfg.Email.Password,
				cfg.Email.From, cfg.Email.Office,
			)
			consumer := queue.NewWorker(rabbitMQ.Ch, mailSender)
			consumer.ReportError = middleware.RecordIntegrationError
			go func() {
				if err := consumer.Start(ctx, queue.QueueName); err != nil {
					log.Printf("❌ Lifecycle consumer stopped: %v", err)
				}
			}()
		}
	} else {
		log.Println("ℹ️ RABBITMQ_URL not set; lifecycle events are only logged")
	}

	// 3. UseCases
	ucs := usecase.New(usecase.Deps{
		Store:     store,
		Notifier:  notifier,
		Publisher: publisher,
		Clock:     realClock,
		Location:  loc,
	})

	// 4. Workers
	overdue := worker.NewOverdueFollowUpWorker(ucs.Dashboard, middleware.SetOverdueFollowUps, cfg.Workers.OverdueSweepInterval)
	go overdue.Start(ctx)

	limiter := handlers.NewRateLimiter(cfg.LeadRate.Limit, cfg.LeadRate.Window)
	go limiter.Cleanup(cfg.LeadRate.Window, ctx.Done())

	// 5. Router
	rt := &handlers.Router{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustProxy:     cfg.App.TrustProxy,
		Leads:          handlers.NewLeadHandler(store, ucs, limiter),
		Bookings:       handlers.NewBookingHandler(store, ucs),
		FollowUps:      handlers.NewFollowUpHandler(store, ucs),
		Enrolments:     handlers.NewEnrolmentHandler(store, ucs),
		Internships:    handlers.NewInternshipHandler(store, ucs),
		Classes:        handlers.NewClassHandler(store, ucs),
		Dashboard:      handlers.NewDashboardHandler(ucs),
		Toasts:         handlers.NewToastHandler(toasts),
		Admin:          handlers.NewAdminHandler(store, notifier),
		Health:         handlers.NewHealthHandler(store, broker, cfg.Email.MailEnabled()),
	}

	addr := ":" + cfg.App.Port
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      rt.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("🔥 Admin console listening on %s (timezone %s)", addr, loc)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case <-ctx.Done():
		log.Println("Shutdown signal received. Starting graceful shutdown...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		httpServer.Close()
	}

	log.Println("Server shutdown complete")
}
