package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drizz21/rental-tes/api"
	"github.com/drizz21/rental-tes/config"
	"github.com/drizz21/rental-tes/internal/bootstrap"
	"github.com/drizz21/rental-tes/internal/cache"
	"github.com/drizz21/rental-tes/internal/kafka"
	"github.com/drizz21/rental-tes/internal/repository"
	"github.com/drizz21/rental-tes/internal/service/admin"
	"github.com/drizz21/rental-tes/internal/service/booking"
	"github.com/drizz21/rental-tes/internal/service/gallery"
	"github.com/drizz21/rental-tes/internal/service/report"
	"github.com/drizz21/rental-tes/internal/service/vehicles"
	"github.com/jackc/pgx/v5/pgxpool"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.VehiclesTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	vehicleRepo := repository.NewVehicleRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)

	vehicleService := vehicles.NewVehicleService(vehicleRepo, bookingRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	galleryService := gallery.NewGalleryService(galleryRepo)
	reportService := report.NewReportService(bookingRepo)
	adminService := admin.NewAdminService(sessionRepo, cfg.Admin)

	handlers := bootstrap.Handlers{
		Vehicles:   api.NewVehicleHandler(vehicleService),
		Bookings:   api.NewBookingHandler(bookingService),
		Gallery:    api.NewGalleryHandler(galleryService),
		Reports:    api.NewReportHandler(reportService),
		Admin:      api.NewAdminHandler(adminService),
		Statistics: api.NewStatisticsHandler(vehicleService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
