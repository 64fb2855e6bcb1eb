// Command main runs the database seeder for the Okuyan diary.
package main

import (
	"flag"
	"log"

	"okuyan/internal/config"
	"okuyan/internal/database"
	"okuyan/internal/seed"
)

func main() {
	// Parse command line flags
	numPosts := flag.Int("posts", 40, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d posts, clean=%v\n", *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if err := seed.BuiltIns(db); err != nil {
		log.Fatalf("Built-in seeding failed: %v", err)
	}

	log.Println("All done! The diary is now populated with demo entries.")
}
