// services/promotion_service_test.go
package services

import (
	"testing"
	"time"

	"barbearia-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSweeperDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Promotion{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createPromotion(t *testing.T, db *gorm.DB, title string, endDate time.Time, active bool) models.Promotion {
	t.Helper()

	promotion := models.Promotion{
		Title:       title,
		Description: "desc",
		StartDate:   endDate.AddDate(0, -1, 0),
		EndDate:     endDate,
		Active:      active,
	}
	if err := db.Create(&promotion).Error; err != nil {
		t.Fatalf("failed to create promotion: %v", err)
	}
	return promotion
}

func TestSweepExpiredDeactivatesOnlyExpiredActive(t *testing.T) {
	db := setupSweeperDB(t)
	now := time.Now()

	expired := createPromotion(t, db, "expirada", now.AddDate(0, 0, -3), true)
	running := createPromotion(t, db, "vigente", now.AddDate(0, 0, 7), true)
	alreadyOff := createPromotion(t, db, "desligada", now.AddDate(0, 0, -10), false)

	NewPromotionSweeper(db).SweepExpired()

	assertActive := func(id any, want bool) {
		t.Helper()
		var promotion models.Promotion
		if err := db.First(&promotion, "id = ?", id).Error; err != nil {
			t.Fatalf("promotion not found: %v", err)
		}
		if promotion.Active != want {
			t.Errorf("promotion %q active = %v, want %v", promotion.Title, promotion.Active, want)
		}
	}

	assertActive(expired.ID, false)
	assertActive(running.ID, true)
	assertActive(alreadyOff.ID, false)
}

func TestSweepExpiredIsIdempotent(t *testing.T) {
	db := setupSweeperDB(t)

	createPromotion(t, db, "expirada", time.Now().AddDate(0, 0, -1), true)

	sweeper := NewPromotionSweeper(db)
	sweeper.SweepExpired()
	sweeper.SweepExpired()

	var count int64
	db.Model(&models.Promotion{}).Where("active = ?", false).Count(&count)
	if count != 1 {
		t.Fatalf("inactive promotions = %d, want 1", count)
	}
}
