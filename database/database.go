package database

import (
	"fmt"
	"log"
	"os"

	"remcua-backend/internal/domain/catalog"
	"remcua-backend/internal/domain/contacts"
	"remcua-backend/internal/domain/content"
	"remcua-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// Category and color ids on curtains are plain indexed columns; deleting
	// a category or color leaves the id in place, so migrations must not add
	// foreign keys.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},

		// catalog
		&catalog.Category{},
		&catalog.Color{},
		&catalog.Curtain{},
		&catalog.CurtainImage{},

		// content
		&content.Banner{},
		&content.Project{},
		&content.Post{},

		// leads
		&contacts.Contact{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
