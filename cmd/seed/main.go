// Command main runs the database seeder for Vitrine.
package main

import (
	"flag"
	"log"

	"vitrine/internal/config"
	"vitrine/internal/database"
	"vitrine/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numItems := flag.Int("items", 100, "Number of items to create")
	maxComments := flag.Int("comments", 5, "Maximum comments per item")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Printf("Target: %d users, %d items, clean=%v\n", *numUsers, *numItems, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("❌ User seeding failed: %v", err)
	}
	items, err := s.SeedItems(users, *numItems)
	if err != nil {
		log.Fatalf("❌ Item seeding failed: %v", err)
	}
	if _, err := s.SeedComments(users, items, *maxComments); err != nil {
		log.Fatalf("❌ Comment seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
