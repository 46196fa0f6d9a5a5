package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/hotel"
	"hotelbooking/internal/modules/testdata"
	"hotelbooking/internal/pkg/retry"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	policy := retry.Policy{
		MaxRetries: cfg.RetryMaxAttempts,
		BaseDelay:  cfg.RetryBaseDelay,
		Multiplier: 2,
	}

	hotelService := hotel.NewService(hotelRepo, bookingRepo, policy)
	hotelHandler := hotel.NewHandler(hotelService)

	bookingService := booking.NewService(bookingRepo, hotelRepo, policy)
	bookingHandler := booking.NewHandler(bookingService)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	root := r.Group("/")
	{
		hotelHandler.RegisterRoutes(root)
		bookingHandler.RegisterRoutes(root)

		// seed/reset endpoints stay off production deployments
		if !cfg.IsProd() {
			testdata.NewHandler(hotelRepo).RegisterRoutes(root)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
