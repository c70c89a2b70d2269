package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"gorm.io/gorm"
)

// Redis-ключи кэша каталога
const (
	hotelsCacheKey      = "sochi:catalog:hotels"
	attractionsCacheKey = "sochi:catalog:attractions"
	catalogCacheTTL     = 24 * time.Hour
)

// CatalogService отдает статический каталог: сперва из Redis, при промахе из БД
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Hotels() ([]models.Hotel, error) {
	rdb := utils.GetRedis()
	if rdb != nil {
		if cached, err := rdb.Get(context.Background(), hotelsCacheKey).Bytes(); err == nil && len(cached) > 0 {
			var hotels []models.Hotel
			if err := json.Unmarshal(cached, &hotels); err == nil {
				return hotels, nil
			}
		}
	}

	var hotels []models.Hotel
	if err := s.db.Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if raw, err := json.Marshal(hotels); err == nil {
			_ = rdb.Set(context.Background(), hotelsCacheKey, raw, catalogCacheTTL).Err()
		}
	}
	return hotels, nil
}

func (s *CatalogService) Attractions() ([]models.Attraction, error) {
	rdb := utils.GetRedis()
	if rdb != nil {
		if cached, err := rdb.Get(context.Background(), attractionsCacheKey).Bytes(); err == nil && len(cached) > 0 {
			var attractions []models.Attraction
			if err := json.Unmarshal(cached, &attractions); err == nil {
				return attractions, nil
			}
		}
	}

	var attractions []models.Attraction
	if err := s.db.Order("id").Find(&attractions).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if raw, err := json.Marshal(attractions); err == nil {
			_ = rdb.Set(context.Background(), attractionsCacheKey, raw, catalogCacheTTL).Err()
		}
	}
	return attractions, nil
}

// RefreshCache перечитывает каталог из БД и перекладывает его в Redis
func (s *CatalogService) RefreshCache() error {
	rdb := utils.GetRedis()
	if rdb != nil {
		_ = rdb.Del(context.Background(), hotelsCacheKey, attractionsCacheKey).Err()
	}
	if _, err := s.Hotels(); err != nil {
		return err
	}
	if _, err := s.Attractions(); err != nil {
		return err
	}
	log.Printf("[CATALOG] Cache refreshed")
	return nil
}

// MapPoint - точка для карты: достопримечательности плюс отели
type MapPoint struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Coords      [2]float64 `json:"coords"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
}

func (s *CatalogService) MapPoints() ([]MapPoint, error) {
	attractions, err := s.Attractions()
	if err != nil {
		return nil, err
	}
	hotels, err := s.Hotels()
	if err != nil {
		return nil, err
	}

	points := make([]MapPoint, 0, len(attractions)+len(hotels))
	for _, a := range attractions {
		points = append(points, MapPoint{
			ID:          a.ID,
			Name:        a.Name,
			Coords:      a.CoordsPair(),
			Description: a.Description,
			Category:    a.Category,
		})
	}
	for _, h := range hotels {
		points = append(points, MapPoint{
			ID:          h.ID,
			Name:        h.Name,
			Coords:      h.CoordsPair(),
			Description: h.Description,
			Category:    "hotel",
		})
	}
	return points, nil
}
