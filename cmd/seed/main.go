package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/modules/testdata"
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
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	ctx := context.Background()
	hotels := repository.NewHotelRepository(db)

	log.Println("Cleaning old data...")
	if err := hotels.DeleteAll(ctx); err != nil {
		log.Fatal("Cleanup failed:", err)
	}

	hotel := testdata.SeedHotel()
	if err := hotels.Create(ctx, hotel); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Printf("Seeded hotel %q with %d rooms", hotel.Name, len(hotel.Rooms))
}
