package catalog

import (
	"sort"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
)

// Лимиты выдачи рекомендаций — зафиксированы фронтендом
const (
	HotelRecommendLimit      = 6
	AttractionRecommendLimit = 4
)

// Границы бюджетных корзин по цене за ночь (рубли)
const (
	economyPriceLimit = 6000
	mediumPriceLimit  = 12000
)

// Preferences - предпочтения пользователя, по которым считается рейтинг рекомендаций
type Preferences struct {
	Activities  []string
	Budget      string
	TravelStyle string
}

// PreferencesOf собирает Preferences из записи пользователя; nil для гостя
func PreferencesOf(u *models.User) *Preferences {
	if u == nil {
		return nil
	}
	return &Preferences{
		Activities:  u.ActivityList(),
		Budget:      u.Budget,
		TravelStyle: u.TravelStyle,
	}
}

// Таблица весов фиксированная: +3 за попадание в бюджет, +2 за правило стиля,
// +1/+2 за каждую активность. Менять значения нельзя - они
// согласованы с ожиданиями фронтенда

func budgetBand(price int) string {
	switch {
	case price <= economyPriceLimit:
		return models.BudgetEconomy
	case price <= mediumPriceLimit:
		return models.BudgetMedium
	default:
		return models.BudgetPremium
	}
}

func scoreHotel(h *models.Hotel, p *Preferences) float64 {
	score := h.Rating

	if p.Budget != "" && budgetBand(h.Price) == p.Budget {
		score += 3
	}

	// Одно правило на стиль путешествия
	switch p.TravelStyle {
	case models.StyleFamily:
		if h.HasAmenities([]string{"pool"}) {
			score += 2
		}
	case models.StyleRomantic:
		if h.HasAmenities([]string{"spa"}) {
			score += 2
		}
	case models.StyleActive:
		if h.District == models.DistrictKrasnayaPolyana {
			score += 2
		}
	case models.StyleRelaxing:
		if h.HasAmenities([]string{"beach"}) {
			score += 2
		}
	}

	// Правила по активностям складываются
	for _, act := range p.Activities {
		switch act {
		case "beach":
			if h.HasAmenities([]string{"beach"}) {
				score += 2
			}
		case "active", "nature":
			if h.District == models.DistrictKrasnayaPolyana {
				score += 2
			}
		case "culture":
			if h.District == models.DistrictCenter {
				score += 1
			}
		case "family":
			if h.HasAmenities([]string{"pool"}) {
				score += 1
			}
		case "food":
			if h.HasAmenities([]string{"restaurant"}) {
				score += 1
			}
		}
	}

	return score
}

// RecommendHotels возвращает топ отелей под предпочтения пользователя.
// Без предпочтений (гость) отдаются первые записи каталога без скоринга
func RecommendHotels(list []models.Hotel, p *Preferences) []models.Hotel {
	if p == nil {
		return headHotels(list, HotelRecommendLimit)
	}
	scored := make([]models.Hotel, len(list))
	copy(scored, list)
	sort.SliceStable(scored, func(i, j int) bool {
		return scoreHotel(&scored[i], p) > scoreHotel(&scored[j], p)
	})
	return headHotels(scored, HotelRecommendLimit)
}

func scoreAttraction(a *models.Attraction, p *Preferences) float64 {
	score := a.Rating

	switch p.TravelStyle {
	case models.StyleFamily:
		if hasTag(a, "Семья") {
			score += 2
		}
	case models.StyleRomantic:
		if a.Category == models.CategoryNature {
			score += 2
		}
	case models.StyleActive:
		if hasTag(a, "Активный отдых") || hasTag(a, "Треккинг") {
			score += 2
		}
	case models.StyleRelaxing:
		if a.Category == models.CategoryBeach {
			score += 2
		}
	}

	for _, act := range p.Activities {
		if act == a.Category {
			score += 2
			continue
		}
		if attractionActivityTag(a, act) {
			score += 1
		}
	}

	return score
}

// attractionActivityTag сопоставляет активность пользователя тегам записи
func attractionActivityTag(a *models.Attraction, act string) bool {
	switch act {
	case "beach":
		return hasTag(a, "Море") || hasTag(a, "Отдых")
	case "active":
		return hasTag(a, "Активный отдых") || hasTag(a, "Адреналин")
	case "nature":
		return hasTag(a, "Природа") || hasTag(a, "Горы")
	case "culture":
		return hasTag(a, "История") || hasTag(a, "Архитектура")
	case "family":
		return hasTag(a, "Семья") || hasTag(a, "Развлечения")
	case "food":
		return hasTag(a, "Гастрономия") || hasTag(a, "Традиции")
	}
	return false
}

// RecommendAttractions - аналог RecommendHotels для достопримечательностей
func RecommendAttractions(list []models.Attraction, p *Preferences) []models.Attraction {
	if p == nil {
		return headAttractions(list, AttractionRecommendLimit)
	}
	scored := make([]models.Attraction, len(list))
	copy(scored, list)
	sort.SliceStable(scored, func(i, j int) bool {
		return scoreAttraction(&scored[i], p) > scoreAttraction(&scored[j], p)
	})
	return headAttractions(scored, AttractionRecommendLimit)
}

func hasTag(a *models.Attraction, tag string) bool {
	for _, t := range a.TagList() {
		if t == tag {
			return true
		}
	}
	return false
}

func headHotels(list []models.Hotel, n int) []models.Hotel {
	if len(list) > n {
		list = list[:n]
	}
	out := make([]models.Hotel, len(list))
	copy(out, list)
	return out
}

func headAttractions(list []models.Attraction, n int) []models.Attraction {
	if len(list) > n {
		list = list[:n]
	}
	out := make([]models.Attraction, len(list))
	copy(out, list)
	return out
}
