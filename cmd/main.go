package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/app"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/auth"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/broker"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/catalog"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/clock"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/handler"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/repo"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/service"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Ticket Order Service API
// @version         1.0
// @description     Документация HTTP API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	loc, err := conf.Orders.Location()
	panicIfErr("invalid order time zone", err)

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db))

	orderRepo := repo.NewPostgresRepo(db, repo.WithLocation(loc))
	txManager := trm.NewManager(db)
	eventCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	catalogClient := catalog.NewClient(conf.Catalog)

	publisher := broker.NewKafkaPublisher(logger, conf.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", slog.Any("error", err))
		}
	}()

	orderService := service.NewOrderService(
		logger,
		txManager,
		orderRepo,
		catalogClient,
		eventCache,
		publisher,
		clock.NewSystem(loc),
		conf.Orders,
	)

	resolver := auth.NewResolver(conf.Auth)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, resolver, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, resolver)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(eventCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
