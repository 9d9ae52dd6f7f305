// File: /database/database.go
package database

import (
	"fmt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"wanderspot-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Place{},
		&models.SavedItem{},
		&models.Conversation{},
		&models.Message{},
		&models.Preferences{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Feed queries: newest posts first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts: %v\n", err)
	}

	// Saved items list per user
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_saved_items_user_created ON saved_items(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for saved_items: %v\n", err)
	}

	// Transcript loads in ascending time order
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_messages_conversation_created ON messages(conversation_id, created_at ASC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for messages: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Duplicate saves are rejected here, not prevented client-side
	if err := db.Exec("ALTER TABLE saved_items ADD CONSTRAINT uk_saved_items_user_item UNIQUE (user_id, item_id, item_type)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for saved_items: %v\n", err)
	}

	// Exactly one conversation per user
	if err := db.Exec("ALTER TABLE conversations ADD CONSTRAINT uk_conversations_user UNIQUE (user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for conversations: %v\n", err)
	}

	// Item type and role domains
	if err := db.Exec("ALTER TABLE saved_items ADD CONSTRAINT ck_saved_items_type CHECK (item_type IN ('post', 'place'))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for saved_items: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE messages ADD CONSTRAINT ck_messages_role CHECK (role IN ('user', 'assistant'))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for messages: %v\n", err)
	}

	return nil
}

// SeedData populates the database with curated places for development/testing
func SeedData(db *gorm.DB) error {
	var placeCount int64
	db.Model(&models.Place{}).Count(&placeCount)

	if placeCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	desc1 := "Historic district with preserved wooden machiya houses and teahouses."
	desc2 := "Iconic shrine gates winding up the forested mountainside."
	city1 := "Kyoto"
	cat := "sightseeing"
	lat1, lng1 := 35.0037, 135.7788
	lat2, lng2 := 34.9671, 135.7727
	photo1 := "https://picsum.photos/400/300?random=1"
	photo2 := "https://picsum.photos/400/300?random=2"

	testPlaces := []models.Place{
		{
			ID:          "place-1",
			Title:       "Gion District",
			Description: &desc1,
			PhotoURL:    &photo1,
			Category:    &cat,
			City:        &city1,
			Lat:         &lat1,
			Lng:         &lng1,
		},
		{
			ID:          "place-2",
			Title:       "Fushimi Inari Taisha",
			Description: &desc2,
			PhotoURL:    &photo2,
			Category:    &cat,
			City:        &city1,
			Lat:         &lat2,
			Lng:         &lng2,
		},
	}

	for _, place := range testPlaces {
		if err := db.Create(&place).Error; err != nil {
			fmt.Printf("Warning: Could not create test place %s: %v\n", place.Title, err)
		}
	}

	fmt.Println("Database seeded with curated places")
	return nil
}
