package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/IlyNosov/Dormitory-Booking/config"
	_ "github.com/IlyNosov/Dormitory-Booking/docs"
	"github.com/IlyNosov/Dormitory-Booking/internal/adapters/bookingapi"
	"github.com/IlyNosov/Dormitory-Booking/internal/adapters/email"
	"github.com/IlyNosov/Dormitory-Booking/internal/adapters/events"
	"github.com/IlyNosov/Dormitory-Booking/internal/adapters/localstore"
	"github.com/IlyNosov/Dormitory-Booking/internal/adapters/redisstore"
	deliveryhttp "github.com/IlyNosov/Dormitory-Booking/internal/delivery/http"
	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/controllers"
	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/middleware"
	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
	"github.com/IlyNosov/Dormitory-Booking/internal/services"
	"github.com/IlyNosov/Dormitory-Booking/internal/telemetry"
)

// @title Room board API
// @version 1.0
// @description Dormitory room booking board: validates bookings locally and relays them to the booking store.
// @BasePath /
func main() {
	// Load first: it applies .env, which may set GO_ENV and LOG_LEVEL for the logger.
	cfg, err := config.Load()
	logger := config.NewLogger()
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("roomboard stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	otelShutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTel.Enabled,
		OTLPEndpoint: cfg.OTel.Endpoint,
		SampleRatio:  cfg.OTel.SamplingRatio,
	})
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	store, err := openLocalStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	policy, err := bookingapi.ParseFetchFailurePolicy(cfg.FetchFailurePolicy)
	if err != nil {
		return err
	}
	httpClient := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	bookingStore := bookingapi.NewClient(cfg.BookingAPIBase, httpClient,
		bookingapi.WithFetchFailurePolicy(policy),
		bookingapi.WithLogger(logger),
	)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mailer.AWSRegion,
			AccessKeyID:     cfg.Mailer.AWSAccessKey,
			SecretAccessKey: cfg.Mailer.AWSSecretKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	notifiers := []domain.BookingNotifier{
		services.NewNotificationService(mailer, email.NewTemplateRenderer(), cfg.Mailer.NotifyAddress, cfg.Location, logger),
	}
	if len(cfg.Events.KafkaBrokers) > 0 {
		publisher := events.NewPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic, logger)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka publisher close error", "err", err)
			}
		}()
		notifiers = append(notifiers, publisher)
	}
	notifier := services.Notifiers(notifiers...)

	adminSvc := services.NewAdminService(store, cfg.UserEmail)
	board := services.NewBoardService(bookingStore, adminSvc, services.BoardConfig{
		Rules:           domain.Rules{SampleStep: cfg.QuietSampleStep},
		Location:        cfg.Location,
		ClockInterval:   cfg.ClockInterval,
		RefreshInterval: cfg.RefreshInterval,
		Notifier:        notifier,
		Logger:          logger,
	})
	if err := board.Refresh(ctx); err != nil {
		logger.Warn("initial booking fetch failed", "err", err)
	}
	go board.Run(ctx)

	router := deliveryhttp.NewRouter(
		controllers.NewBoardController(logger, board),
		controllers.NewAdminController(logger, adminSvc, board),
		controllers.NewRulesController(logger, board),
	)
	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = otelhttp.NewHandler(handler, "roomboard")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr, "booking_api", cfg.BookingAPIBase, "time_zone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
	return nil
}

type localStore interface {
	domain.KeyValueStore
	Close() error
}

// openLocalStore picks where the admin token lives. LOCALSTORE_DRIVER=redis takes a
// redis:// URL as the DSN; anything else goes through database/sql.
func openLocalStore(ctx context.Context, cfg *config.Config) (localStore, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.LocalStoreDriver), "redis") {
		store, err := redisstore.Open(ctx, cfg.LocalStoreDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	driver, err := localstore.ParseDriver(cfg.LocalStoreDriver)
	if err != nil {
		return nil, err
	}
	store, err := localstore.Open(ctx, driver, cfg.LocalStoreDSN)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
