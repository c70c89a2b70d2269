package utils

import "github.com/go-redis/redis/v8"

// Глобальный Redis-клиент; nil, если Redis недоступен
var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}
