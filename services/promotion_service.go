// services/promotion_service.go
package services

import (
	"log"
	"time"

	"barbearia-backend/models"
	"barbearia-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PromotionSweeper deactivates promotions whose end date has passed, so
// the public page never advertises an expired discount.
type PromotionSweeper struct {
	db *gorm.DB
}

func NewPromotionSweeper(db *gorm.DB) *PromotionSweeper {
	return &PromotionSweeper{db: db}
}

// StartScheduler runs one sweep immediately and then daily at 3 AM.
func (s *PromotionSweeper) StartScheduler() {
	c := cron.New()

	s.SweepExpired()

	c.AddFunc("0 3 * * *", s.SweepExpired)
	c.Start()
	log.Println("Promotion sweeper started")
}

func (s *PromotionSweeper) SweepExpired() {
	cutoff := utils.BeginningOfDay(time.Now())

	var expired []models.Promotion
	if err := s.db.Where("active = ? AND end_date < ?", true, cutoff).Find(&expired).Error; err != nil {
		log.Printf("Failed to fetch expired promotions: %v", err)
		return
	}

	for _, promotion := range expired {
		if err := s.db.Model(&promotion).Update("active", false).Error; err != nil {
			log.Printf("Failed to deactivate promotion %s: %v", promotion.ID, err)
			continue
		}
		log.Printf("Deactivated promotion %q, expired %d day(s) ago",
			promotion.Title, utils.DaysBetween(promotion.EndDate, time.Now()))
	}
}
