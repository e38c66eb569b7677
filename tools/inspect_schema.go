package main

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/ruok-app/ruok-api/internal/models"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	err = db.AutoMigrate(
		&models.User{},
		&models.Emotion{},
		&models.ActivityTag{},
		&models.PlaceTag{},
		&models.PeopleTag{},
		&models.CheckIn{},
		&models.ToolFeedback{},
		&models.Booking{},
		&models.GHQEntry{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== %s ===\n", table)
		var ddl string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&ddl)
		fmt.Println(ddl)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name=? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, idx := range indexes {
			fmt.Println(idx)
		}
	}
}
