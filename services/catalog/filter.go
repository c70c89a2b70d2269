package catalog

import (
	"strings"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
)

// HotelFilter - параметры фильтрации отелей, один в один с панелью фильтров фронтенда
type HotelFilter struct {
	PriceMin  int      `json:"price_min"`
	PriceMax  int      `json:"price_max"`
	MinRating float64  `json:"min_rating"`
	Amenities []string `json:"amenities"`
	Stars     []int    `json:"stars"`
	Districts []string `json:"districts"`
	Types     []string `json:"types"`
	Query     string   `json:"query"`
}

// FilterAttractions возвращает достопримечательности выбранной категории,
// совпадающие с поисковой строкой (имя, описание или тег, без учета регистра)
func FilterAttractions(list []models.Attraction, category, query string) []models.Attraction {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Attraction, 0, len(list))
	for _, a := range list {
		if category != "" && category != "all" && a.Category != category {
			continue
		}
		if q != "" && !attractionMatches(&a, q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func attractionMatches(a *models.Attraction, q string) bool {
	if strings.Contains(strings.ToLower(a.Name), q) || strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, tag := range a.TagList() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterHotels оставляет отели, проходящие все заданные условия.
// Пустое множество в критерии означает "критерий не задан"
func FilterHotels(list []models.Hotel, f HotelFilter) []models.Hotel {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Hotel, 0, len(list))
	for _, h := range list {
		if h.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && h.Price > f.PriceMax {
			continue
		}
		if h.Rating < f.MinRating {
			continue
		}
		if !h.HasAmenities(f.Amenities) {
			continue
		}
		if len(f.Stars) > 0 && !containsInt(f.Stars, h.Stars) {
			continue
		}
		if len(f.Districts) > 0 && !containsString(f.Districts, h.District) {
			continue
		}
		if len(f.Types) > 0 && !containsString(f.Types, h.Type) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.Location), q) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// DefaultHotelFilter - фильтр, пропускающий весь каталог.
// Нулевой PriceMax означает "без верхней границы": отели из партнерской
// витрины могут стоить дороже слайдера фронтенда
func DefaultHotelFilter() HotelFilter {
	return HotelFilter{}
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
