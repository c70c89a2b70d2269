package catalog

import (
	"testing"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"

	"github.com/stretchr/testify/assert"
)

func testHotels() []models.Hotel {
	return []models.Hotel{
		{ID: 1, Name: "Бюджетный", Price: 5000, Rating: 4.2, Stars: 3, District: models.DistrictLazarevsky, Type: models.HotelTypeGuesthouse,
			Amenities: models.MustJSONList([]string{"wifi", "beach"})},
		{ID: 2, Name: "Средний", Price: 10000, Rating: 4.6, Stars: 4, District: models.DistrictCenter, Type: models.HotelTypeHotel,
			Amenities: models.MustJSONList([]string{"wifi", "pool", "restaurant"})},
		{ID: 3, Name: "Премиум", Price: 15000, Rating: 4.9, Stars: 5, District: models.DistrictAdler, Type: models.HotelTypeResort,
			Amenities: models.MustJSONList([]string{"wifi", "pool", "spa", "beach"})},
	}
}

func testAttractions() []models.Attraction {
	return []models.Attraction{
		{ID: 1, Name: "Роза Хутор", Category: models.CategoryNature, Rating: 4.9, Description: "Горнолыжный курорт",
			Tags: models.MustJSONList([]string{"Горы", "Активный отдых"})},
		{ID: 2, Name: "Пляж Ривьера", Category: models.CategoryBeach, Rating: 4.7, Description: "Городской пляж",
			Tags: models.MustJSONList([]string{"Море", "Отдых"})},
		{ID: 3, Name: "Олимпийский парк", Category: models.CategoryCulture, Rating: 4.8, Description: "Наследие Олимпиады",
			Tags: models.MustJSONList([]string{"Спорт", "История"})},
	}
}

// 1️⃣ Фильтр по умолчанию пропускает весь каталог
func TestFilterHotelsDefault(t *testing.T) {
	got := FilterHotels(testHotels(), DefaultHotelFilter())
	assert.Len(t, got, 3)
}

// 2️⃣ Без верхней границы цены дорогой отель из витрины не теряется
func TestFilterHotelsUnboundedPrice(t *testing.T) {
	hotels := append(testHotels(), models.Hotel{ID: 4, Name: "Люкс из витрины", Price: 60000, Rating: 5.0, Stars: 5})
	got := FilterHotels(hotels, DefaultHotelFilter())
	assert.Len(t, got, 4)

	f := DefaultHotelFilter()
	f.PriceMax = 50000
	assert.Len(t, FilterHotels(hotels, f), 3)
}

// 3️⃣ Ценовой диапазон [0,10000] включает границы
func TestFilterHotelsPriceRange(t *testing.T) {
	f := DefaultHotelFilter()
	f.PriceMax = 10000
	got := FilterHotels(testHotels(), f)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

// 4️⃣ Удобства проверяются как надмножество
func TestFilterHotelsAmenitiesSuperset(t *testing.T) {
	f := DefaultHotelFilter()
	f.Amenities = []string{"pool", "beach"}
	got := FilterHotels(testHotels(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

// 5️⃣ Каждый добавленный критерий только сужает выдачу
func TestFilterHotelsMonotonicNarrowing(t *testing.T) {
	hotels := testHotels()
	f := DefaultHotelFilter()
	prev := len(FilterHotels(hotels, f))

	f.MinRating = 4.5
	cur := len(FilterHotels(hotels, f))
	assert.LessOrEqual(t, cur, prev)
	prev = cur

	f.Stars = []int{4, 5}
	cur = len(FilterHotels(hotels, f))
	assert.LessOrEqual(t, cur, prev)
	prev = cur

	f.Districts = []string{models.DistrictCenter}
	cur = len(FilterHotels(hotels, f))
	assert.LessOrEqual(t, cur, prev)
	assert.Equal(t, 1, cur)
}

// 6️⃣ Текстовый поиск не зависит от регистра
func TestFilterHotelsQuery(t *testing.T) {
	f := DefaultHotelFilter()
	f.Query = "ПРЕМИУМ"
	got := FilterHotels(testHotels(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

// 7️⃣ Категория "all" и пустая категория эквивалентны
func TestFilterAttractionsAllCategory(t *testing.T) {
	list := testAttractions()
	assert.Len(t, FilterAttractions(list, "all", ""), 3)
	assert.Len(t, FilterAttractions(list, "", ""), 3)
	assert.Len(t, FilterAttractions(list, models.CategoryBeach, ""), 1)
}

// 8️⃣ Поиск достопримечательностей по тегам
func TestFilterAttractionsQueryByTag(t *testing.T) {
	got := FilterAttractions(testAttractions(), "all", "горы")
	assert.Len(t, got, 1)
	assert.Equal(t, "Роза Хутор", got[0].Name)
}
