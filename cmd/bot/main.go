package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/pricing"
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

	// Подключение к базе данных
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "db"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort,
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"),
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	// Загружаем каталог пакетов
	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/packages.json"
	}
	store, err := catalog.Load(catalogPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить каталог пакетов: %v", err)
	}

	// Инициализация репозиториев и сервисов
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	wishRepo := repository.NewWishlistRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	authService := service.NewAuthService(userRepo)
	packageService := service.NewPackageService(store, nil) // история поиска в боте не ведется
	bookingService := service.NewBookingService(store, bookingRepo)
	wishlistService := service.NewWishlistService(store, wishRepo)
	offerService := service.NewOfferService(newsletterRepo, subRepo)

	// Инициализация Telegram Bot API
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal("Ошибка инициализации бота:", err)
	}
	log.Printf("Запущен бот %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	ctx := context.Background()

	// Состояние диалогов: пользователи, от которых ждем данные формы бронирования
	pendingBooking := make(map[int64]int) // TelegramID -> PackageID

	for update := range updates {
		// --- CallbackQuery (inline buttons) ---
		if cq := update.CallbackQuery; cq != nil {
			bot.Request(tgbotapi.NewCallback(cq.ID, ""))

			fromID := cq.From.ID
			data := cq.Data

			switch {
			// Карточка пакета
			case strings.HasPrefix(data, "PKG_"):
				pkgID, _ := strconv.Atoi(strings.TrimPrefix(data, "PKG_"))
				pkg := packageService.GetByID(pkgID)
				if pkg == nil {
					bot.Send(tgbotapi.NewMessage(fromID, "Пакет не найден."))
					continue
				}
				sendPackageCard(bot, fromID, pkg)

			// Похожие пакеты
			case strings.HasPrefix(data, "SIM_"):
				pkgID, _ := strconv.Atoi(strings.TrimPrefix(data, "SIM_"))
				similar := packageService.Recommend(pkgID, 0)
				if len(similar) == 0 {
					bot.Send(tgbotapi.NewMessage(fromID, "Похожих пакетов не нашлось."))
					continue
				}
				reply := tgbotapi.NewMessage(fromID, "Вам также может понравиться:")
				reply.ReplyMarkup = packageKeyboard(similar)
				bot.Send(reply)

			// Избранное
			case strings.HasPrefix(data, "WISH_"):
				pkgID, _ := strconv.Atoi(strings.TrimPrefix(data, "WISH_"))
				wished, err := wishlistService.Toggle(clientID(fromID), pkgID)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(fromID, "Не удалось обновить избранное."))
				} else if wished {
					bot.Send(tgbotapi.NewMessage(fromID, "Пакет добавлен в избранное."))
				} else {
					bot.Send(tgbotapi.NewMessage(fromID, "Пакет убран из избранного."))
				}

			// Начать бронирование
			case strings.HasPrefix(data, "BOOK_"):
				pkgID, _ := strconv.Atoi(strings.TrimPrefix(data, "BOOK_"))
				pendingBooking[fromID] = pkgID
				bot.Send(tgbotapi.NewMessage(fromID,
					"Отправьте данные брони одной строкой:\nИмя; email; число путешественников; заметки (необязательно); промокод (необязательно)"))
			}

			continue
		}

		// --- Обычные сообщения ---
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID
		userID := msg.From.ID

		// Команды
		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				user, err := authService.AuthUser(userID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Ошибка авторизации."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID,
						fmt.Sprintf("Здравствуйте, %s! Напишите, куда хотите поехать (или * для всего каталога).", user.FirstName)))
				}

			case "packages":
				bot.Send(tgbotapi.NewMessage(chatID, "Введите слово для поиска (или * для всех пакетов):"))

			case "deals":
				deals := packageService.Deals(3)
				reply := tgbotapi.NewMessage(chatID, "Самые выгодные пакеты:")
				reply.ReplyMarkup = packageKeyboard(deals)
				bot.Send(reply)

			case "wishlist":
				packages, err := wishlistService.List(clientID(userID))
				if err != nil || len(packages) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Избранное пусто."))
				} else {
					reply := tgbotapi.NewMessage(chatID, "Ваше избранное:")
					reply.ReplyMarkup = packageKeyboard(packages)
					bot.Send(reply)
				}

			case "mybookings":
				args := strings.TrimSpace(msg.CommandArguments())
				if args == "" {
					bot.Send(tgbotapi.NewMessage(chatID, "Используйте: /mybookings <email>"))
					break
				}
				bookings, err := bookingService.ListByEmail(args)
				if err != nil || len(bookings) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Бронирований не найдено."))
					break
				}
				var b strings.Builder
				for _, bk := range bookings {
					pkg := packageService.GetByID(bk.PackageID)
					name := "?"
					if pkg != nil {
						name = pkg.Name
					}
					fmt.Fprintf(&b, "%s — %s, итого %d (%s)\n", bk.Reference, name, bk.Total, bk.CreatedAt.Format("02.01.2006"))
				}
				bot.Send(tgbotapi.NewMessage(chatID, b.String()))

			case "subscribe_offers":
				user, err := authService.AuthUser(userID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Сервис временно недоступен."))
					break
				}
				if already, _ := offerService.IsSubscribedDeals(user.ID); already {
					bot.Send(tgbotapi.NewMessage(chatID, "Вы уже подписаны на рассылку предложений."))
					break
				}
				offerService.SubscribeDeals(user.ID)
				bot.Send(tgbotapi.NewMessage(chatID, "Вы подписаны на рассылку горящих предложений."))

			case "unsubscribe_offers":
				user, err := authService.AuthUser(userID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Сервис временно недоступен."))
					break
				}
				offerService.UnsubscribeDeals(user.ID)
				bot.Send(tgbotapi.NewMessage(chatID, "Вы отписаны от рассылки."))

			case "support":
				bot.Send(tgbotapi.NewMessage(chatID, "Перейдите в бот поддержки "+os.Getenv("SUPPORT_BOT_NAME")+" и опишите вопрос."))

			case "broadcast":
				user, _ := userRepo.GetByTelegramID(userID)
				if user == nil || user.Role != "admin" {
					bot.Send(tgbotapi.NewMessage(chatID, "Команда доступна только администраторам."))
				} else {
					text := msg.CommandArguments()
					if text == "" {
						bot.Send(tgbotapi.NewMessage(chatID, "Используйте: /broadcast <текст>"))
					} else {
						ids, _ := offerService.DealSubscriberIDs()
						for _, tid := range ids {
							bot.Send(tgbotapi.NewMessage(tid, text))
						}
						bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Рассылка отправлена %d подписчикам.", len(ids))))
					}
				}
			}
			continue
		}

		// Данные формы бронирования
		if pkgID, ok := pendingBooking[userID]; ok {
			delete(pendingBooking, userID)
			form := parseBookingForm(pkgID, msg.Text)
			booking, fieldErrs, err := bookingService.CreateBooking(form)
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Ошибка создания брони. Попробуйте позже."))
				continue
			}
			if len(fieldErrs) > 0 {
				var b strings.Builder
				b.WriteString("Проверьте данные:\n")
				for _, e := range fieldErrs {
					b.WriteString("- " + e + "\n")
				}
				bot.Send(tgbotapi.NewMessage(chatID, b.String()))
				continue
			}
			pkg := packageService.GetByID(booking.PackageID)
			text := fmt.Sprintf(
				"Бронь %s оформлена!\n%s, %d чел.\nСумма: %d\nСкидка: %d\nНалог: %d\nИтого: %d",
				booking.Reference, pkg.Name, booking.Travellers,
				booking.Subtotal, booking.Discount, booking.Tax, booking.Total,
			)
			bot.Send(tgbotapi.NewMessage(chatID, text))
			continue
		}

		// Поиск пакетов по тексту
		kw := strings.TrimSpace(msg.Text)
		if kw == "*" {
			kw = ""
		}
		packages := packageService.Search(ctx, clientID(userID), kw, 0, "")
		if len(packages) == 0 {
			bot.Send(tgbotapi.NewMessage(chatID, "Ничего не найдено. Попробуйте шире: beach, adventure, heritage."))
			continue
		}
		if len(packages) > 8 {
			packages = packages[:8]
		}
		reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Найдено пакетов: %d", len(packages)))
		reply.ReplyMarkup = packageKeyboard(packages)
		bot.Send(reply)
	}
}

// clientID возвращает идентификатор клиента избранного для пользователя Telegram.
func clientID(telegramID int64) string {
	return fmt.Sprintf("tg:%d", telegramID)
}

// packageKeyboard строит клавиатуру со строкой-кнопкой на каждый пакет.
func packageKeyboard(packages []model.Package) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(packages))
	for _, p := range packages {
		label := fmt.Sprintf("%s — %d", p.Name, p.Price)
		if len(label) > 40 {
			label = label[:40] + "..."
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("PKG_%d", p.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// sendPackageCard отправляет карточку пакета с фото, описанием и кнопками действий.
func sendPackageCard(bot *tgbotapi.BotAPI, chatID int64, pkg *model.Package) {
	text := fmt.Sprintf(
		"*%s*\n%s • %s\n\n%s\n\nТеги: %s\nЦена за пакет: %d",
		pkg.Name, pkg.Location, pkg.Duration, pkg.Description,
		strings.Join(pkg.Tags, ", "), pkg.Price,
	)
	btnSim := tgbotapi.NewInlineKeyboardButtonData("Похожие", fmt.Sprintf("SIM_%d", pkg.ID))
	btnWish := tgbotapi.NewInlineKeyboardButtonData("В избранное", fmt.Sprintf("WISH_%d", pkg.ID))
	btnBook := tgbotapi.NewInlineKeyboardButtonData("Забронировать", fmt.Sprintf("BOOK_%d", pkg.ID))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btnSim, btnWish, btnBook))

	if pkg.Image != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(pkg.Image))
		photo.Caption = text
		photo.ParseMode = "Markdown"
		photo.ReplyMarkup = keyboard
		if _, err := bot.Send(photo); err == nil {
			return
		}
		// Фото не отправилось - падаем на текстовую карточку
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboard
	bot.Send(msg)
}

// parseBookingForm разбирает строку "Имя; email; путешественники; заметки; промокод".
func parseBookingForm(packageID int, text string) pricing.BookingForm {
	parts := strings.Split(text, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	form := pricing.BookingForm{PackageID: packageID}
	if len(parts) > 0 {
		form.Name = parts[0]
	}
	if len(parts) > 1 {
		form.Email = parts[1]
	}
	if len(parts) > 2 {
		form.Travellers, _ = strconv.Atoi(parts[2])
	}
	if len(parts) > 3 {
		form.Notes = parts[3]
	}
	if len(parts) > 4 {
		form.PromoCode = parts[4]
	}
	return form
}
