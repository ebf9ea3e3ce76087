package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/spacebooking/api"
	"github.com/Domenick1991/spacebooking/config"
	"github.com/Domenick1991/spacebooking/internal/bootstrap"
	"github.com/Domenick1991/spacebooking/internal/cache"
	"github.com/Domenick1991/spacebooking/internal/kafka"
	"github.com/Domenick1991/spacebooking/internal/logger"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/Domenick1991/spacebooking/internal/seed"
	"github.com/Domenick1991/spacebooking/internal/service/booking"
	"github.com/Domenick1991/spacebooking/internal/service/catalog"
	"github.com/Domenick1991/spacebooking/internal/service/tips"
	"github.com/Domenick1991/spacebooking/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.Log)
	if logg.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logg.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logg.WithError(err).Fatal("ensure schema")
	}

	repos := repository.NewRepositories(pool)

	checks := map[string]api.Pinger{"postgres": pool}

	seedOpts := []seed.Option{seed.WithTransactor(repository.NewTxRunner(pool))}
	var catalogOpts []catalog.Option
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.DestinationsCacheTTL)*time.Second)
		defer redisCache.Close()
		catalogOpts = append(catalogOpts, catalog.WithCache(redisCache))
		seedOpts = append(seedOpts, seed.WithCacheInvalidator(redisCache))
		checks["redis"] = redisCache
	}

	var bookingOpts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logg)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logg.WithError(err).Warn("kafka unreachable, booking events may be lost")
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	catalogService := catalog.NewCatalogService(repos.Destinations, repos.SeatClasses, repos.Accommodations, logg, catalogOpts...)
	userService := users.NewUserService(repos.Users, logg)
	bookingService := booking.NewBookingService(repos, logg, bookingOpts...)

	if cfg.Seed.Enabled {
		if _, err := seed.NewSeeder(repos, bookingService, logg, seedOpts...).SeedIfEmpty(ctx); err != nil {
			logg.WithError(err).Fatal("seed demo data")
		}
	}

	router := bootstrap.NewRouter(cfg.HTTP, bootstrap.Handlers{
		Destinations: api.NewDestinationHandler(catalogService),
		Bookings:     api.NewBookingHandler(bookingService),
		Users:        api.NewUserHandler(userService, bookingService),
		System:       api.NewSystemHandler(tips.NewService(nil), checks),
	}, logg)

	if err := bootstrap.Run(ctx, cfg, router, logg); err != nil {
		logg.WithError(err).Fatal("server error")
	}
}
