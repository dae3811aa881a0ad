package main

import (
	"log"
	"os"
	"strconv"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/repository"
	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"
)

// dealsPerDigest - сколько пакетов попадает в письмо.
const dealsPerDigest = 5

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := "host=" + dbHost + " port=" + dbPort +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASS") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/packages.json"
	}
	store, err := catalog.Load(catalogPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить каталог пакетов: %v", err)
	}

	newsletterRepo := repository.NewNewsletterRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	packageService := service.NewPackageService(store, nil)
	offerService := service.NewOfferService(newsletterRepo, subRepo)

	job := func() {
		emails, err := offerService.SubscriberEmails()
		if err != nil {
			log.Printf("Не удалось получить подписчиков: %v", err)
			return
		}
		if len(emails) == 0 {
			log.Println("Подписчиков нет, дайджест не отправлен.")
			return
		}
		body := offerService.ComposeDigest(packageService.Deals(dealsPerDigest))
		sent := 0
		for _, email := range emails {
			if err := sendEmail(email, "Лучшие предложения недели", body); err != nil {
				log.Printf("Письмо на %s не отправлено: %v", email, err)
				continue
			}
			sent++
		}
		log.Printf("Дайджест отправлен: %d из %d подписчиков", sent, len(emails))
	}

	// Разовый запуск для ручной проверки рассылки
	if os.Getenv("DIGEST_RUN_NOW") == "1" {
		job()
		return
	}

	spec := os.Getenv("DIGEST_CRON")
	if spec == "" {
		spec = "0 9 * * 1" // каждый понедельник в 09:00
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, job); err != nil {
		log.Fatalf("Некорректное расписание %q: %v", spec, err)
	}
	log.Printf("Планировщик дайджеста запущен, расписание: %s", spec)
	c.Start()
	select {}
}

// sendEmail отправляет письмо через SMTP, параметры берутся из окружения.
func sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	return d.DialAndSend(m)
}
