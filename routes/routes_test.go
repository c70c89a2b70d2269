package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/database"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Поднимаем in-memory SQLite вместо PostgreSQL: схема мигрируется
// тем же кодом, Redis в тестах отсутствует (кэш и лимиты отключены)
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if err := database.SeedDemoUsers(db); err != nil {
		log.Fatalf("failed to seed demo users: %v", err)
	}
	utils.SetDB(db)

	os.Exit(m.Run())
}

func performRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, r *gin.Engine, email string) (token string, userID string) {
	w := performRequest(r, "POST", "/auth/register", "", map[string]string{
		"email": email, "password": "123456", "name": "Тестовый Пользователь",
	})
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	token, _ = body["token"].(string)
	user, _ := body["user"].(map[string]interface{})
	userID, _ = user["id"].(string)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, userID)
	return token, userID
}

// 1️⃣ Регистрация: токен выдается, пароль наружу не уходит, предпочтения по умолчанию
func TestRegister(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/auth/register", "", map[string]string{
		"email": "new@example.com", "password": "123456", "name": "Новый",
	})
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])
	assert.Equal(t, "medium", user["budget"])
	assert.Equal(t, "relaxing", user["travel_style"])
	assert.NotContains(t, w.Body.String(), "password")
}

// 2️⃣ Повторная регистрация того же email
func TestRegisterDuplicateEmail(t *testing.T) {
	r := SetupRouter()
	registerUser(t, r, "dup@example.com")
	w := performRequest(r, "POST", "/auth/register", "", map[string]string{
		"email": "dup@example.com", "password": "654321", "name": "Дубль",
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "уже существует")
}

// 3️⃣ Логин: неизвестный email и неверный пароль различаются кодами
func TestLoginErrors(t *testing.T) {
	r := SetupRouter()
	registerUser(t, r, "login@example.com")

	w := performRequest(r, "POST", "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "123456",
	})
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Пользователь не найден")

	w = performRequest(r, "POST", "/auth/login", "", map[string]string{
		"email": "login@example.com", "password": "wrong",
	})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Пароль неверный")

	w = performRequest(r, "POST", "/auth/login", "", map[string]string{
		"email": "login@example.com", "password": "123456",
	})
	assert.Equal(t, 200, w.Code)
}

// 4️⃣ Демо-переключение на сидированного пользователя без пароля
func TestSwitchUser(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/auth/switch-user", "", map[string]string{
		"user_id": "user-demo-1",
	})
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "anna@example.com", user["email"])
}

// 5️⃣ Профиль: частичное обновление не трогает остальные поля
func TestUpdateProfilePartial(t *testing.T) {
	r := SetupRouter()
	token, _ := registerUser(t, r, "profile@example.com")

	w := performRequest(r, "POST", "/user/update-profile", token, map[string]interface{}{
		"budget":     "economy",
		"activities": []string{"beach", "nature"},
	})
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, "economy", result["budget"])
	assert.Equal(t, "Тестовый Пользователь", result["name"])
	assert.Equal(t, "relaxing", result["travel_style"])

	w = performRequest(r, "POST", "/user/update-profile", token, map[string]string{
		"budget": "luxury",
	})
	assert.Equal(t, 400, w.Code)
}

// 6️⃣ Профиль без токена недоступен
func TestProfileRequiresAuth(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "GET", "/user/profile", "", nil)
	assert.Equal(t, 401, w.Code)
}

// 7️⃣ Избранное: повторный toggle снимает отметку, состояние видно через check
func TestFavoritesToggle(t *testing.T) {
	r := SetupRouter()
	token, _ := registerUser(t, r, "fav@example.com")

	w := performRequest(r, "POST", "/user/favorites/toggle", token, map[string]interface{}{
		"kind": "attraction", "item_id": 2,
	})
	assert.Equal(t, 200, w.Code)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, true, result["favorited"])

	w = performRequest(r, "GET", "/user/favorites/check/attraction/2", token, nil)
	assert.Equal(t, 200, w.Code)
	result = decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, true, result["favorited"])

	// Повторный toggle
	w = performRequest(r, "POST", "/user/favorites/toggle", token, map[string]interface{}{
		"kind": "attraction", "item_id": 2,
	})
	assert.Equal(t, 200, w.Code)
	result = decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, false, result["favorited"])

	// И снова включить - уникальный индекс не мешает
	w = performRequest(r, "POST", "/user/favorites/toggle", token, map[string]interface{}{
		"kind": "attraction", "item_id": 2,
	})
	assert.Equal(t, 200, w.Code)

	w = performRequest(r, "GET", "/user/favorites", token, nil)
	assert.Equal(t, 200, w.Code)
	result = decodeBody(t, w)["result"].(map[string]interface{})
	ids := result["attraction_ids"].([]interface{})
	assert.Len(t, ids, 1)
}

// 8️⃣ Неизвестный тип избранного отклоняется
func TestFavoritesBadKind(t *testing.T) {
	r := SetupRouter()
	token, _ := registerUser(t, r, "favkind@example.com")
	w := performRequest(r, "POST", "/user/favorites/toggle", token, map[string]interface{}{
		"kind": "restaurant", "item_id": 1,
	})
	assert.Equal(t, 400, w.Code)
}

// 9️⃣ Гостевая бронь: сумма за все ночи, номер в формате SOCHI-NNNNNN
func TestBookingGuestCreate(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/bookings", "", map[string]interface{}{
		"hotel_id": 1, "check_in": "2026-09-10", "check_out": "2026-09-13",
		"guests": 2, "room_type": "standard",
		"guest_name": "Иван Гостев", "guest_email": "ivan@example.com", "guest_phone": "+7 900 123-45-67",
	})
	assert.Equal(t, 201, w.Code)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Regexp(t, `^SOCHI-\d{6}$`, result["id"])
	assert.Equal(t, "guest", result["user_id"])
	assert.Equal(t, "confirmed", result["status"])
	assert.Equal(t, float64(3*12500), result["total_price"])
	assert.Equal(t, "Radisson Blu Resort", result["hotel_name"])
}

// 🔟 Выезд не позже заезда - бронь отклоняется
func TestBookingBadDates(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/bookings", "", map[string]interface{}{
		"hotel_id": 1, "check_in": "2026-09-10", "check_out": "2026-09-10",
		"guests": 1, "guest_name": "Иван", "guest_email": "ivan@example.com", "guest_phone": "+79001234567",
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "позже даты заезда")
}

// 1️⃣1️⃣ Несуществующий отель
func TestBookingUnknownHotel(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/bookings", "", map[string]interface{}{
		"hotel_id": 999, "check_in": "2026-09-10", "check_out": "2026-09-12",
		"guests": 1, "guest_name": "Иван", "guest_email": "ivan@example.com", "guest_phone": "+79001234567",
	})
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Отель не найден")
}

// 1️⃣2️⃣ Бронь пользователя: появляется в списке, отмена меняет статус, запись не исчезает
func TestBookingUserFlow(t *testing.T) {
	r := SetupRouter()
	token, userID := registerUser(t, r, "booking@example.com")

	w := performRequest(r, "POST", "/bookings", token, map[string]interface{}{
		"hotel_id": 3, "check_in": "2026-10-01", "check_out": "2026-10-03",
		"guests": 2, "meal_plan": "breakfast",
		"guest_name": "Петр Бронов", "guest_email": "petr@example.com", "guest_phone": "+79001112233",
	})
	assert.Equal(t, 201, w.Code)
	created := decodeBody(t, w)["result"].(map[string]interface{})
	bookingID := created["id"].(string)
	assert.Equal(t, userID, created["user_id"])

	w = performRequest(r, "POST", "/bookings/"+bookingID+"/cancel", token, nil)
	assert.Equal(t, 200, w.Code)
	cancelled := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "cancelled", cancelled["status"])

	// Отмененная бронь остается в истории
	w = performRequest(r, "GET", "/user/bookings", token, nil)
	assert.Equal(t, 200, w.Code)
	list := decodeBody(t, w)["result"].([]interface{})
	assert.Len(t, list, 1)
	assert.Equal(t, "cancelled", list[0].(map[string]interface{})["status"])
}

// 1️⃣3️⃣ Чужую бронь отменить нельзя
func TestBookingCancelForeign(t *testing.T) {
	r := SetupRouter()
	ownerToken, _ := registerUser(t, r, "owner@example.com")
	strangerToken, _ := registerUser(t, r, "stranger@example.com")

	w := performRequest(r, "POST", "/bookings", ownerToken, map[string]interface{}{
		"hotel_id": 2, "check_in": "2026-10-05", "check_out": "2026-10-07",
		"guests": 1, "guest_name": "Хозяин", "guest_email": "owner@example.com", "guest_phone": "+79005556677",
	})
	assert.Equal(t, 201, w.Code)
	bookingID := decodeBody(t, w)["result"].(map[string]interface{})["id"].(string)

	w = performRequest(r, "POST", "/bookings/"+bookingID+"/cancel", strangerToken, nil)
	assert.Equal(t, 403, w.Code)
}

// 1️⃣4️⃣ Каталог: список, фильтр по цене, карта
func TestCatalogEndpoints(t *testing.T) {
	r := SetupRouter()

	w := performRequest(r, "GET", "/catalog/attractions", "", nil)
	assert.Equal(t, 200, w.Code)
	attractions := decodeBody(t, w)["result"].([]interface{})
	assert.Len(t, attractions, 9)

	w = performRequest(r, "GET", "/catalog/attractions?category=beach", "", nil)
	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["result"].([]interface{}), 1)

	w = performRequest(r, "GET", "/catalog/hotels?price_max=6000&stars=3", "", nil)
	assert.Equal(t, 200, w.Code)
	hotels := decodeBody(t, w)["result"].([]interface{})
	for _, h := range hotels {
		assert.LessOrEqual(t, h.(map[string]interface{})["price"].(float64), 6000.0)
	}
	assert.NotEmpty(t, hotels)

	w = performRequest(r, "GET", "/catalog/map-points", "", nil)
	assert.Equal(t, 200, w.Code)
	points := decodeBody(t, w)["result"].([]interface{})
	assert.Len(t, points, 9+8)
}

// 1️⃣5️⃣ Рекомендации: гостю лимитированная выдача, пользователю - под предпочтения
func TestRecommendations(t *testing.T) {
	r := SetupRouter()

	w := performRequest(r, "GET", "/catalog/recommendations", "", nil)
	assert.Equal(t, 200, w.Code)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Len(t, result["hotels"].([]interface{}), 6)
	assert.Len(t, result["attractions"].([]interface{}), 4)

	token, _ := registerUser(t, r, "recs@example.com")
	w = performRequest(r, "POST", "/user/update-profile", token, map[string]interface{}{
		"budget": "economy", "travel_style": "relaxing", "activities": []string{"beach"},
	})
	assert.Equal(t, 200, w.Code)

	w = performRequest(r, "GET", "/catalog/recommendations", token, nil)
	assert.Equal(t, 200, w.Code)
	result = decodeBody(t, w)["result"].(map[string]interface{})
	hotels := result["hotels"].([]interface{})
	// Бюджетный пляжный гостевой дом должен подняться наверх
	assert.Equal(t, "Гостевой дом Морская волна", hotels[0].(map[string]interface{})["name"])
}

// 1️⃣6️⃣ Refresh-токен обменивается на новую пару, access-токен в роли refresh не проходит
func TestRefreshToken(t *testing.T) {
	r := SetupRouter()
	w := performRequest(r, "POST", "/auth/register", "", map[string]string{
		"email": "refresh@example.com", "password": "123456", "name": "Токен Обновленный",
	})
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	accessToken := body["token"].(string)
	refreshToken := body["refresh_token"].(string)
	assert.NotEmpty(t, refreshToken)

	w = performRequest(r, "POST", "/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, 200, w.Code)
	body = decodeBody(t, w)
	newToken := body["token"].(string)
	assert.NotEmpty(t, body["refresh_token"])

	// Новый access-токен рабочий
	w = performRequest(r, "GET", "/user/profile", newToken, nil)
	assert.Equal(t, 200, w.Code)

	// Access-токен вместо refresh отклоняется
	w = performRequest(r, "POST", "/auth/refresh", "", map[string]string{
		"refresh_token": accessToken,
	})
	assert.Equal(t, 401, w.Code)

	// Мусор вместо refresh отклоняется
	w = performRequest(r, "POST", "/auth/refresh", "", map[string]string{
		"refresh_token": "not-a-token",
	})
	assert.Equal(t, 401, w.Code)
}

// 1️⃣7️⃣ История поиска: сохраняется и отдается новыми вперед
func TestSearchHistory(t *testing.T) {
	r := SetupRouter()
	token, _ := registerUser(t, r, "history@example.com")

	for i := 0; i < 3; i++ {
		w := performRequest(r, "POST", "/user/search-history", token, map[string]interface{}{
			"query":   fmt.Sprintf("запрос %d", i),
			"filters": map[string]interface{}{"price_max": 10000 + i},
		})
		assert.Equal(t, 200, w.Code)
	}

	w := performRequest(r, "GET", "/user/search-history", token, nil)
	assert.Equal(t, 200, w.Code)
	list := decodeBody(t, w)["result"].([]interface{})
	assert.Len(t, list, 3)
	assert.Equal(t, "запрос 2", list[0].(map[string]interface{})["query"])
}

// 1️⃣8️⃣ История поиска обрезается до 20 записей, выживают самые свежие
func TestSearchHistoryCap(t *testing.T) {
	r := SetupRouter()
	token, publicID := registerUser(t, r, "historycap@example.com")

	for i := 0; i < 25; i++ {
		w := performRequest(r, "POST", "/user/search-history", token, map[string]interface{}{
			"query": fmt.Sprintf("запрос %d", i),
		})
		assert.Equal(t, 200, w.Code)
	}

	w := performRequest(r, "GET", "/user/search-history", token, nil)
	assert.Equal(t, 200, w.Code)
	list := decodeBody(t, w)["result"].([]interface{})
	assert.Len(t, list, 20)
	assert.Equal(t, "запрос 24", list[0].(map[string]interface{})["query"])

	// Лишние записи действительно удалены из БД, а не скрыты лимитом выдачи
	var user models.User
	assert.NoError(t, utils.GetDB().Where("public_id = ?", publicID).First(&user).Error)
	var count int64
	utils.GetDB().Model(&models.HotelSearchHistory{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(20), count)
}
