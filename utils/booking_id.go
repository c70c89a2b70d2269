package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateBookingID возвращает номер брони в формате SOCHI-NNNNNN (6 цифр, 100000-999999).
// Формат зафиксирован фронтендом, менять нельзя
func GenerateBookingID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// Энтропия недоступна - деградируем до времени, уникальность
		// добирает retry по первичному ключу при создании брони
		return fmt.Sprintf("SOCHI-%06d", 100000+time.Now().UnixNano()%900000)
	}
	return fmt.Sprintf("SOCHI-%06d", 100000+n.Int64())
}
