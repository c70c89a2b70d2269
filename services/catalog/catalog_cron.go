package catalog

import (
	"log"
	"os"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartCatalogCron запускает ночное обновление кэша каталога и, если задан
// PARTNER_FEED_URL, импорт партнерской витрины отелей
func StartCatalogCron(db *gorm.DB) {
	svc := NewCatalogService(db)

	// Прогреваем кэш сразу при старте, дальше каждую ночь в 02:00
	go refreshCatalog(db, svc)

	c := cron.New()
	_, _ = c.AddFunc("0 2 * * *", func() { refreshCatalog(db, svc) })
	c.Start()
	log.Printf("[CATALOG CRON] Scheduler started. Catalog will refresh nightly at 02:00")
}

func refreshCatalog(db *gorm.DB, svc *CatalogService) {
	if feedURL := os.Getenv("PARTNER_FEED_URL"); feedURL != "" {
		importPartnerFeed(db, feedURL)
	}
	if err := svc.RefreshCache(); err != nil {
		log.Printf("[CATALOG CRON] refresh failed: %v", err)
	}
}

// importPartnerFeed обновляет цены/рейтинги существующих отелей по имени
// и добавляет новые записи из витрины
func importPartnerFeed(db *gorm.DB, feedURL string) {
	parser := NewFeedParser()
	parsed, err := parser.ParseURL(feedURL)
	if err != nil {
		log.Printf("[CATALOG CRON] partner feed failed: %v", err)
		utils.LogError(err, "partner feed import")
		return
	}

	updated, created := 0, 0
	for _, h := range parsed {
		var existing struct{ ID int }
		err := db.Table("hotels").Select("id").Where("name = ?", h.Name).Take(&existing).Error
		if err == nil {
			db.Table("hotels").Where("id = ?", existing.ID).
				Updates(map[string]interface{}{"price": h.Price, "rating": h.Rating})
			updated++
			continue
		}
		if err := db.Create(h).Error; err != nil {
			log.Printf("[CATALOG CRON] create %q failed: %v", h.Name, err)
			continue
		}
		created++
	}
	log.Printf("[CATALOG CRON] Partner feed imported: %d updated, %d created", updated, created)
}
