package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/handler"
	"github.com/nitish1238/travel-booking-app/internal/repository"
	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

// envOr возвращает значение переменной окружения или значение по умолчанию.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	// Подключение к базе данных
	dsn := "host=" + envOr("DB_HOST", "localhost") +
		" port=" + envOr("DB_PORT", "5432") +
		" user=" + os.Getenv("DB_USER") +
		" password=" + os.Getenv("DB_PASS") +
		" dbname=" + os.Getenv("DB_NAME") +
		" sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				log.Printf("Не удалось прочитать миграцию %s: %v", file, readErr)
				continue
			}
			if _, execErr := db.Exec(string(content)); execErr != nil {
				log.Printf("Миграция %s завершилась ошибкой: %v", file, execErr)
			} else {
				log.Printf("Миграция %s применена.", file)
			}
		}
	}

	// Загружаем каталог пакетов: некорректный каталог - фатальная ошибка конфигурации
	store, err := catalog.Load(envOr("CATALOG_PATH", "data/packages.json"))
	if err != nil {
		log.Fatalf("Не удалось загрузить каталог пакетов: %v", err)
	}
	log.Printf("Каталог загружен: %d пакетов", store.Len())

	// Redis для истории поиска
	redisClient := redis.NewClient(&redis.Options{Addr: envOr("REDIS_ADDR", "localhost:6379")})

	// Инициализируем репозитории
	bookingRepo := repository.NewBookingRepository(db)
	wishRepo := repository.NewWishlistRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	userRepo := repository.NewUserRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	historyRepo := repository.NewSearchHistoryRepository(redisClient)

	// Инициализируем сервисы
	packageService := service.NewPackageService(store, historyRepo)
	bookingService := service.NewBookingService(store, bookingRepo)
	wishlistService := service.NewWishlistService(store, wishRepo)
	offerService := service.NewOfferService(newsletterRepo, subRepo)
	supportService := service.NewSupportService(msgRepo, userRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(packageService, bookingService, wishlistService, offerService, supportService)
	router := gin.Default()
	h.Register(router)

	// Запускаем HTTP-сервер
	port := envOr("API_PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
