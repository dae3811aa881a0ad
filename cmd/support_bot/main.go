package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nitish1238/travel-booking-app/internal/repository"
	"github.com/nitish1238/travel-booking-app/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "db"
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
		log.Fatalf("DB connection failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	supportService := service.NewSupportService(msgRepo, userRepo)

	supportToken := os.Getenv("SUPPORT_BOT_TOKEN")
	if supportToken == "" {
		log.Fatal("Не указан токен бота поддержки (SUPPORT_BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(supportToken)
	if err != nil {
		log.Fatal("Ошибка инициализации support бота:", err)
	}
	log.Printf("Запущен бот поддержки %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID

		user, err := authService.AuthUser(msg.From.ID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
		if err != nil {
			bot.Send(tgbotapi.NewMessage(chatID, "Сервис временно недоступен."))
			continue
		}

		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				if user.Role == "admin" {
					bot.Send(tgbotapi.NewMessage(chatID, "Оператор поддержки на связи. Ожидание обращений..."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Здравствуйте! Опишите ваш вопрос по турам или бронированию, и оператор скоро ответит."))
				}

			// Последние обращения, включая присланные через форму на сайте
			case "inbox":
				if user.Role != "admin" {
					bot.Send(tgbotapi.NewMessage(chatID, "Команда недоступна."))
					break
				}
				messages, err := supportService.RecentMessages(10)
				if err != nil || len(messages) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Обращений нет."))
					break
				}
				var b strings.Builder
				for _, m := range messages {
					from := m.Email
					if m.UserID != nil {
						from = fmt.Sprintf("пользователь #%d", *m.UserID)
					}
					fmt.Fprintf(&b, "[%s] %s:\n%s\n\n", m.CreatedAt.Format("02.01 15:04"), from, m.Content)
				}
				bot.Send(tgbotapi.NewMessage(chatID, b.String()))

			case "answer":
				if user.Role != "admin" {
					bot.Send(tgbotapi.NewMessage(chatID, "Команда недоступна."))
					break
				}
				args := msg.CommandArguments()
				parts := strings.SplitN(args, " ", 2)
				if len(parts) < 2 {
					bot.Send(tgbotapi.NewMessage(chatID, "Использование: /answer <UserID> <текст ответа>"))
					break
				}
				uid, err := strconv.Atoi(parts[0])
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Некорректный ID пользователя."))
					break
				}
				recipient, err := userService.GetByID(uid)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Пользователь не найден."))
					break
				}
				bot.Send(tgbotapi.NewMessage(recipient.TelegramID, fmt.Sprintf("Ответ поддержки: %s", parts[1])))
				bot.Send(tgbotapi.NewMessage(chatID, "Ответ отправлен пользователю."))
			}
			continue
		}

		// Обработка обычных сообщений
		if user.Role == "admin" {
			bot.Send(tgbotapi.NewMessage(chatID, "Для ответа пользователю используйте команду /answer <ID> <сообщение>."))
			continue
		}

		if err := supportService.SubmitFromUser(user.ID, msg.Text); err != nil {
			bot.Send(tgbotapi.NewMessage(chatID, "Не удалось отправить обращение. Попробуйте позже."))
			continue
		}
		admins, err := supportService.Admins()
		if err != nil || len(admins) == 0 {
			bot.Send(tgbotapi.NewMessage(chatID, "Нет доступных операторов. Обращение сохранено."))
			continue
		}
		for _, admin := range admins {
			out := fmt.Sprintf("Обращение от %s (ID %d):\n%s", user.FirstName, user.ID, msg.Text)
			bot.Send(tgbotapi.NewMessage(admin.TelegramID, out))
		}
		bot.Send(tgbotapi.NewMessage(chatID, "Ваш запрос отправлен в службу поддержки. Ожидайте ответа."))
	}
}
