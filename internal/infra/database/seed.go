package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

// Seed provisions a usable content store: one admin account and a starter
// menu/package set, so a fresh deployment renders a real site instead of
// relying on hardcoded fallbacks in the UI layer.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Name: "Spanish Latte", Description: "Espresso with sweetened milk", Price: 140, Category: "coffee", IsAvailable: true},
		{Name: "Americano", Description: "Double shot over water", Price: 110, Category: "coffee", IsAvailable: true},
		{Name: "Matcha Latte", Description: "Ceremonial grade matcha", Price: 150, Category: "non-coffee", IsAvailable: true},
		{Name: "Butter Croissant", Description: "Baked every morning", Price: 95, Category: "pastry", IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	cartPrice := 8500.0
	packages := []models.Package{
		{
			Name:        "Coffee Cart Classic",
			Description: "Two baristas, unlimited drinks for 3 hours",
			Price:       &cartPrice,
			Category:    "coffee cart",
			Inclusions:  []string{"2 baristas", "3 hours service", "Unlimited iced & hot drinks"},
			IsActive:    true,
		},
	}
	return db.Create(&packages).Error
}
