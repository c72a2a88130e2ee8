package db

import (
	"log"

	"gorm.io/gorm"

	"assettracker/internal/models"
)

// Seed inserts a handful of sample assets and one containment edge when the
// assets table is empty. A non-empty database is left untouched.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	assets := []models.Asset{
		{Code: "KHO123", Name: "Dell Laptop", Type: "laptop"},
		{Code: "KHO573", Name: "HP Printer", Type: "printer"},
		{Code: "KHOWD111", Name: "Windows 11 Pro License", Type: "license"},
		{Code: "KHO789", Name: "Samsung Monitor", Type: "monitor"},
		{Code: "KHO456", Name: "Office Chair", Type: "furniture"},
	}
	if err := gdb.Create(&assets).Error; err != nil {
		return err
	}

	// the laptop contains the license
	rel := models.Relationship{ParentCode: "KHO123", ChildCode: "KHOWD111"}
	if err := gdb.Create(&rel).Error; err != nil {
		return err
	}

	log.Printf("seeded %d sample assets", len(assets))
	return nil
}
