package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/config"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/controllers"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/database"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/routes"
	catalogsvc "github.com/pr-poehali-dev/sochi-tour-guide-app/services/catalog"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"
)

func main() {
	// Часовой пояс Сочи для всех логов и таймстемпов
	moscowLocation, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		moscowLocation = time.FixedZone("MSK", 3*60*60)
	}
	time.Local = moscowLocation

	cfg := config.LoadConfig()

	// Файловые логи для ошибок и паник
	if err := utils.InitLogger(); err != nil {
		log.Printf("file logger init failed: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Глобальный *gorm.DB для контроллеров
	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Сидирование каталога и демо-аккаунтов
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if err := database.SeedDemoUsers(db); err != nil {
		log.Fatalf("failed to seed demo users: %v", err)
	}
	log.Println("Catalog and demo users seeded (if needed)")

	// Подключение к Redis. Без Redis сервис работает, но без кэша,
	// лимитов на брони и черного списка токенов
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	// Ночное обновление кэша каталога и импорт партнерской витрины
	catalogsvc.StartCatalogCron(db)

	// Инициализация Google OAuth
	controllers.InitGoogleOAuth()

	r := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
