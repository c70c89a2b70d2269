package catalog

import (
	"fmt"
	"testing"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"

	"github.com/stretchr/testify/assert"
)

// 1️⃣ Попадание цены в бюджетную корзину дает +3
func TestScoreHotelBudgetMatch(t *testing.T) {
	economy := models.Hotel{ID: 1, Price: 5000, Rating: 4.0}
	premium := models.Hotel{ID: 2, Price: 15000, Rating: 4.0}

	p := &Preferences{Budget: models.BudgetEconomy}
	assert.Equal(t, 7.0, scoreHotel(&economy, p))
	assert.Equal(t, 4.0, scoreHotel(&premium, p))
}

// 2️⃣ Границы корзин: 6000 еще economy, 12000 еще medium
func TestBudgetBandBoundaries(t *testing.T) {
	assert.Equal(t, models.BudgetEconomy, budgetBand(6000))
	assert.Equal(t, models.BudgetMedium, budgetBand(6001))
	assert.Equal(t, models.BudgetMedium, budgetBand(12000))
	assert.Equal(t, models.BudgetPremium, budgetBand(12001))
}

// 3️⃣ Стиль family ценит бассейн, активности складываются
func TestScoreHotelStyleAndActivities(t *testing.T) {
	h := models.Hotel{
		ID: 1, Price: 8000, Rating: 4.0, District: models.DistrictCenter,
		Amenities: models.MustJSONList([]string{"pool", "restaurant"}),
	}
	p := &Preferences{
		Budget:      models.BudgetMedium,
		TravelStyle: models.StyleFamily,
		Activities:  []string{"family", "food", "culture"},
	}
	// 4.0 + 3 (бюджет) + 2 (стиль: pool) + 1 (family: pool) + 1 (food: restaurant) + 1 (culture: центр)
	assert.Equal(t, 12.0, scoreHotel(&h, p))
}

// 4️⃣ Гость без предпочтений получает первые записи каталога без пересортировки
func TestRecommendHotelsGuest(t *testing.T) {
	var list []models.Hotel
	for i := 1; i <= 10; i++ {
		list = append(list, models.Hotel{ID: i, Name: fmt.Sprintf("Отель %d", i), Price: 5000, Rating: 4.0})
	}
	got := RecommendHotels(list, nil)
	assert.Len(t, got, HotelRecommendLimit)
	for i, h := range got {
		assert.Equal(t, i+1, h.ID)
	}
}

// 5️⃣ Выдача обрезается до лимита и не трогает исходный срез
func TestRecommendHotelsTruncation(t *testing.T) {
	var list []models.Hotel
	for i := 1; i <= 10; i++ {
		list = append(list, models.Hotel{ID: i, Price: 5000 + i*1000, Rating: 4.0})
	}
	p := &Preferences{Budget: models.BudgetPremium}
	got := RecommendHotels(list, p)
	assert.Len(t, got, HotelRecommendLimit)
	assert.Equal(t, 1, list[0].ID) // исходный порядок не изменился
}

// 6️⃣ Отель, попавший в бюджет, обгоняет более рейтинговый вне бюджета
func TestRecommendHotelsBudgetBeatsRating(t *testing.T) {
	list := []models.Hotel{
		{ID: 1, Price: 15000, Rating: 4.9},
		{ID: 2, Price: 5000, Rating: 4.2},
	}
	got := RecommendHotels(list, &Preferences{Budget: models.BudgetEconomy})
	assert.Equal(t, 2, got[0].ID)
}

// 7️⃣ Рекомендации достопримечательностей: совпадение категории с активностью дает +2
func TestRecommendAttractionsActivityCategory(t *testing.T) {
	list := []models.Attraction{
		{ID: 1, Category: models.CategoryCulture, Rating: 4.8},
		{ID: 2, Category: models.CategoryBeach, Rating: 4.0},
	}
	got := RecommendAttractions(list, &Preferences{Activities: []string{"beach"}})
	assert.Equal(t, 2, got[0].ID)
}

// 8️⃣ Гость получает первые записи, лимит 4
func TestRecommendAttractionsGuest(t *testing.T) {
	var list []models.Attraction
	for i := 1; i <= 6; i++ {
		list = append(list, models.Attraction{ID: i, Rating: 4.0})
	}
	got := RecommendAttractions(list, nil)
	assert.Len(t, got, AttractionRecommendLimit)
	assert.Equal(t, 1, got[0].ID)
}
