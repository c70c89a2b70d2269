package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Анти-спам для создания броней: не чаще 1 раза в 10 секунд и не более 20 в час
// на один контактный email. При недоступном Redis лимиты не применяются
func CanCreateBooking(rdb *redis.Client, email string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	burstKey := fmt.Sprintf("booking_burst_%s", email)
	hourKey := fmt.Sprintf("booking_hour_%s", email)
	if rdb.Exists(ctx, burstKey).Val() > 0 {
		return false, "Бронировать можно не чаще 1 раза в 10 секунд"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 20 {
		return false, "Не более 20 бронирований в час"
	}
	return true, ""
}

func MarkBookingCreated(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	burstKey := fmt.Sprintf("booking_burst_%s", email)
	hourKey := fmt.Sprintf("booking_hour_%s", email)
	rdb.Set(ctx, burstKey, 1, 10*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
