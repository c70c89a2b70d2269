package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 1️⃣ Номер брони всегда в формате SOCHI-NNNNNN
func TestGenerateBookingIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^SOCHI-[1-9]\d{5}$`)
	for i := 0; i < 100; i++ {
		id := GenerateBookingID()
		assert.Regexp(t, re, id)
	}
}

// 2️⃣ Цена из витрины: неразрывные пробелы и знак рубля отбрасываются
func TestExtractPriceRub(t *testing.T) {
	assert.Equal(t, 12500, ExtractPriceRub("12 500 ₽"))
	assert.Equal(t, 3500, ExtractPriceRub("от 3 500 руб./ночь"))
	assert.Equal(t, 0, ExtractPriceRub("цена по запросу"))
}

// 3️⃣ Форматирование рублей с разбиением на тысячи
func TestFormatRUB(t *testing.T) {
	assert.Equal(t, "12 500 ₽", FormatRUB(12500))
	assert.Equal(t, "900 ₽", FormatRUB(900))
	assert.Equal(t, "1 000 000 ₽", FormatRUB(1000000))
}

// 4️⃣ Хэш пароля проверяется, чужой пароль не проходит
func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, CheckPasswordHash("123456", hash))
	assert.False(t, CheckPasswordHash("654321", hash))
}

// 5️⃣ CSV-параметры запроса: пустые элементы и пробелы отбрасываются
func TestSplitCSVParam(t *testing.T) {
	assert.Equal(t, []string{"pool", "spa"}, SplitCSVParam("pool, spa"))
	assert.Empty(t, SplitCSVParam(""))
	assert.Equal(t, []string{"beach"}, SplitCSVParam(",beach,"))
}

// 6️⃣ Без Redis лимиты на брони не применяются
func TestCanCreateBookingWithoutRedis(t *testing.T) {
	ok, msg := CanCreateBooking(nil, "guest@example.com")
	assert.True(t, ok)
	assert.Empty(t, msg)
}
