package database

import (
	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"gorm.io/gorm"
)

// SeedCatalog заполняет пустой каталог достопримечательностей и отелей.
// Каталог статический, поэтому сидируем только один раз
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Attraction{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		attractions := []models.Attraction{
			{
				ID: 1, Name: "Олимпийский парк", Category: models.CategoryCulture, Rating: 4.8,
				Image:       "https://images.unsplash.com/photo-1464207687429-7505649dae38",
				Description: "Наследие Олимпиады-2014",
				Tags:        models.MustJSONList([]string{"Спорт", "История", "Архитектура"}),
				Coords:      models.MustJSONCoords(43.4057, 39.9578),
			},
			{
				ID: 2, Name: "Роза Хутор", Category: models.CategoryNature, Rating: 4.9,
				Image:       "https://images.unsplash.com/photo-1605540436563-5bca919ae766",
				Description: "Горнолыжный курорт",
				Tags:        models.MustJSONList([]string{"Горы", "Активный отдых", "Природа"}),
				Coords:      models.MustJSONCoords(43.6725, 40.2958),
			},
			{
				ID: 3, Name: "Пляж Ривьера", Category: models.CategoryBeach, Rating: 4.7,
				Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
				Description: "Лучший городской пляж",
				Tags:        models.MustJSONList([]string{"Море", "Отдых", "Семья"}),
				Coords:      models.MustJSONCoords(43.5918, 39.7159),
			},
			{
				ID: 4, Name: "Агурские водопады", Category: models.CategoryNature, Rating: 4.9,
				Image:       "https://images.unsplash.com/photo-1432405972618-c60b0225b8f9",
				Description: "Живописные водопады",
				Tags:        models.MustJSONList([]string{"Природа", "Треккинг", "Фото"}),
				Coords:      models.MustJSONCoords(43.5606, 39.8306),
			},
			{
				ID: 5, Name: "Скайпарк", Category: models.CategoryCulture, Rating: 4.8,
				Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
				Description: "Экстрим и панорамы",
				Tags:        models.MustJSONList([]string{"Развлечения", "Адреналин", "Виды"}),
				Coords:      models.MustJSONCoords(43.5333, 39.9897),
			},
			{
				ID: 6, Name: "Дагомысские чайные плантации", Category: models.CategoryFood, Rating: 4.6,
				Image:       "https://images.unsplash.com/photo-1558160074-4d7d8bdf4256",
				Description: "Северная чайная столица",
				Tags:        models.MustJSONList([]string{"Чай", "Традиции", "Гастрономия"}),
				Coords:      models.MustJSONCoords(43.6975, 39.6557),
			},
			{
				ID: 7, Name: "Сочинский дендрарий", Category: models.CategoryNature, Rating: 4.7,
				Image:       "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae",
				Description: "Парк субтропической флоры",
				Tags:        models.MustJSONList([]string{"Природа", "Семья", "Прогулки"}),
				Coords:      models.MustJSONCoords(43.5702, 39.7434),
			},
			{
				ID: 8, Name: "Морской порт Сочи", Category: models.CategoryCulture, Rating: 4.5,
				Image:       "https://images.unsplash.com/photo-1528219089976-aafd6a4cfb13",
				Description: "Визитная карточка города",
				Tags:        models.MustJSONList([]string{"История", "Архитектура", "Виды"}),
				Coords:      models.MustJSONCoords(43.5795, 39.7188),
			},
			{
				ID: 9, Name: "Гора Ахун", Category: models.CategoryNature, Rating: 4.6,
				Image:       "https://images.unsplash.com/photo-1519681393784-d120267933ba",
				Description: "Смотровая башня над Сочи",
				Tags:        models.MustJSONList([]string{"Горы", "Треккинг", "Виды"}),
				Coords:      models.MustJSONCoords(43.5503, 39.8453),
			},
		}
		if err := db.Create(&attractions).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hotels := []models.Hotel{
			{
				ID: 1, Name: "Radisson Blu Resort", Price: 12500, Rating: 4.8,
				Location: "Адлер, Имеретинская низменность", District: models.DistrictAdler,
				Stars: 5, Type: models.HotelTypeHotel,
				Image:            "https://images.unsplash.com/photo-1566073771259-6a8506099945",
				Description:      "Курортный отель у Олимпийского парка",
				Amenities:        models.MustJSONList([]string{"wifi", "pool", "spa", "restaurant"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Бассейн", "СПА", "Ресторан"}),
				Coords:           models.MustJSONCoords(43.4162, 39.9505),
			},
			{
				ID: 2, Name: "Swissotel Сочи Камелия", Price: 15000, Rating: 4.9,
				Location: "Курортный проспект, 89", District: models.DistrictCenter,
				Stars: 5, Type: models.HotelTypeResort,
				Image:            "https://images.unsplash.com/photo-1571896349842-33c89424de2d",
				Description:      "Классика сочинской ривьеры с собственным пляжем",
				Amenities:        models.MustJSONList([]string{"wifi", "beach", "fitness", "parking"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Пляж", "Фитнес", "Парковка"}),
				Coords:           models.MustJSONCoords(43.5608, 39.7628),
			},
			{
				ID: 3, Name: "Hyatt Regency Sochi", Price: 10000, Rating: 4.7,
				Location: "Орджоникидзе, 17", District: models.DistrictCenter,
				Stars: 5, Type: models.HotelTypeHotel,
				Image:            "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
				Description:      "Вид на море в центре города",
				Amenities:        models.MustJSONList([]string{"wifi", "pool", "bar", "conference"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Бассейн", "Бар", "Конференц-зал"}),
				Coords:           models.MustJSONCoords(43.5823, 39.7215),
			},
			{
				ID: 4, Name: "Rosa Springs", Price: 9000, Rating: 4.6,
				Location: "Красная Поляна, Роза Хутор", District: models.DistrictKrasnayaPolyana,
				Stars: 4, Type: models.HotelTypeHotel,
				Image:            "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
				Description:      "Горный отель с бальнеологическим центром",
				Amenities:        models.MustJSONList([]string{"wifi", "spa", "pool", "restaurant"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "СПА", "Бассейн", "Ресторан"}),
				Coords:           models.MustJSONCoords(43.6597, 40.3215),
			},
			{
				ID: 5, Name: "Курорт Горки Город", Price: 8000, Rating: 4.4,
				Location: "Красная Поляна, Эсто-Садок", District: models.DistrictKrasnayaPolyana,
				Stars: 4, Type: models.HotelTypeResort,
				Image:            "https://images.unsplash.com/photo-1549294413-26f195200c16",
				Description:      "Апарт-курорт у подъемников",
				Amenities:        models.MustJSONList([]string{"wifi", "pool", "restaurant", "parking"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Бассейн", "Ресторан", "Парковка"}),
				Coords:           models.MustJSONCoords(43.6819, 40.2702),
			},
			{
				ID: 6, Name: "Апартаменты Олимпийские", Price: 5500, Rating: 4.5,
				Location: "Адлер, Олимпийский парк", District: models.DistrictOlympic,
				Stars: 3, Type: models.HotelTypeApartment,
				Image:            "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
				Description:      "Апартаменты с кухней рядом со стадионами",
				Amenities:        models.MustJSONList([]string{"wifi", "kitchen", "parking"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Кухня", "Парковка"}),
				Coords:           models.MustJSONCoords(43.4028, 39.9553),
			},
			{
				ID: 7, Name: "Гостевой дом Морская волна", Price: 3500, Rating: 4.3,
				Location: "Лазаревское, ул. Победы", District: models.DistrictLazarevsky,
				Stars: 3, Type: models.HotelTypeGuesthouse,
				Image:            "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
				Description:      "Семейный гостевой дом в пяти минутах от моря",
				Amenities:        models.MustJSONList([]string{"wifi", "beach", "parking"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Пляж", "Парковка"}),
				Coords:           models.MustJSONCoords(43.9057, 39.3321),
			},
			{
				ID: 8, Name: "Отель Приморье", Price: 6000, Rating: 4.2,
				Location: "Хоста, ул. Платановая", District: models.DistrictKhostinsky,
				Stars: 3, Type: models.HotelTypeHotel,
				Image:            "https://images.unsplash.com/photo-1445019980597-93fa8acb246c",
				Description:      "Тихий отель в зеленой Хосте",
				Amenities:        models.MustJSONList([]string{"wifi", "beach", "restaurant"}),
				AmenitiesDisplay: models.MustJSONList([]string{"Wi-Fi", "Пляж", "Ресторан"}),
				Coords:           models.MustJSONCoords(43.5129, 39.8659),
			},
		}
		if err := db.Create(&hotels).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedDemoUsers создает демо-аккаунты для локальных стендов.
// Пароль у всех "123456", избранное заполняется как в демо-данных фронтенда
func SeedDemoUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("123456")
	if err != nil {
		return err
	}

	demo := []struct {
		user models.User
		favs []int
	}{
		{
			user: models.User{
				PublicID: "user-demo-1", Email: "anna@example.com", Name: "Анна Иванова",
				Password: hash, Role: "user",
				Activities:  models.MustJSONList([]string{"beach", "culture"}),
				Budget:      models.BudgetPremium,
				TravelStyle: models.StyleRelaxing,
			},
			favs: []int{1, 2, 3, 4, 5},
		},
		{
			user: models.User{
				PublicID: "user-demo-2", Email: "dmitry@example.com", Name: "Дмитрий Петров",
				Password: hash, Role: "user",
				Activities:  models.MustJSONList([]string{"active", "nature"}),
				Budget:      models.BudgetMedium,
				TravelStyle: models.StyleActive,
			},
			favs: []int{2, 4, 5, 6, 7},
		},
		{
			user: models.User{
				PublicID: "user-demo-3", Email: "elena@example.com", Name: "Елена Смирнова",
				Password: hash, Role: "user",
				Activities:  models.MustJSONList([]string{"family", "parks"}),
				Budget:      models.BudgetMedium,
				TravelStyle: models.StyleFamily,
			},
			favs: []int{1, 3, 7, 8, 9},
		},
	}

	for _, d := range demo {
		u := d.user
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		for _, itemID := range d.favs {
			fav := models.Favorite{UserID: u.ID, Kind: models.FavoriteKindAttraction, ItemID: itemID}
			if err := db.Create(&fav).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
