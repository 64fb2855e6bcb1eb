package seed

import (
	"fmt"
	"log"

	"okuyan/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo diary content.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d posts...", opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	authors := models.Authors()
	created := 0
	for i := 0; i < opts.NumPosts; i++ {
		author := authors[i%len(authors)]
		post, err := factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		// roughly half the posts get one or two responses
		for r := 0; r < factory.rng.Intn(3); r++ {
			if _, err := factory.CreateResponse(post); err != nil {
				return fmt.Errorf("failed to create response: %w", err)
			}
		}
		created++
	}

	log.Printf("Database seeding completed: %d posts created", created)
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`TRUNCATE TABLE responses, posts RESTART IDENTITY CASCADE;`).Error
	}
	if err := db.Exec(`DELETE FROM responses`).Error; err != nil {
		return err
	}
	return db.Exec(`DELETE FROM posts`).Error
}

// welcomePosts are created once on an empty database so the diary never
// opens on a blank page.
var welcomePosts = []models.Post{
	{
		Author:  models.AuthorSude,
		Content: "İlk yazı! Bu günlük artık bizim.",
		Tags:    []string{"gunluk"},
		Style: models.PostStyle{
			BackgroundColor: "#fff0f5",
			TextColor:       "#4a1c40",
			FontFamily:      "Caveat",
		},
	},
	{
		Author:  models.AuthorErtan,
		Content: "Hoş geldin. Burası sadece ikimize ait bir köşe.",
		Tags:    []string{"gunluk"},
		Style: models.PostStyle{
			BackgroundColor: "#1a1a2e",
			TextColor:       "#e0e0e0",
			FontFamily:      "Inter",
		},
	},
}

// BuiltIns seeds the welcome posts when the posts table is empty. It is
// idempotent and safe to run on every startup.
func BuiltIns(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range welcomePosts {
		post := welcomePosts[i]
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("seed welcome post: %w", err)
		}
	}
	return nil
}
