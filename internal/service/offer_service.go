package service

import (
	"fmt"
	"strings"

	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/pricing"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// OfferService содержит логику подписок на предложения: email-рассылка с сайта
// и Telegram-подписки на горящие туры.
type OfferService struct {
	newsletterRepo *repository.NewsletterRepository
	subRepo        *repository.SubscriptionRepository
}

// NewOfferService создает новый сервис предложений.
func NewOfferService(newsletterRepo *repository.NewsletterRepository, subRepo *repository.SubscriptionRepository) *OfferService {
	return &OfferService{newsletterRepo: newsletterRepo, subRepo: subRepo}
}

// SubscribeEmail оформляет подписку адреса на email-рассылку.
func (s *OfferService) SubscribeEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !pricing.ValidEmail(email) {
		return ErrInvalidEmail
	}
	return s.newsletterRepo.Subscribe(email)
}

// UnsubscribeEmail отменяет подписку адреса на email-рассылку.
func (s *OfferService) UnsubscribeEmail(email string) error {
	return s.newsletterRepo.Unsubscribe(strings.ToLower(strings.TrimSpace(email)))
}

// SubscriberEmails возвращает адреса всех подписчиков рассылки.
func (s *OfferService) SubscriberEmails() ([]string, error) {
	return s.newsletterRepo.GetAllEmails()
}

// SubscribeDeals подписывает пользователя бота на горящие предложения.
func (s *OfferService) SubscribeDeals(userID int) error {
	return s.subRepo.Subscribe(userID)
}

// IsSubscribedDeals сообщает, подписан ли пользователь бота на предложения.
func (s *OfferService) IsSubscribedDeals(userID int) (bool, error) {
	return s.subRepo.IsSubscribed(userID)
}

// UnsubscribeDeals отписывает пользователя бота от горящих предложений.
func (s *OfferService) UnsubscribeDeals(userID int) error {
	return s.subRepo.Unsubscribe(userID)
}

// DealSubscriberIDs возвращает Telegram ID всех подписанных пользователей.
func (s *OfferService) DealSubscriberIDs() ([]int64, error) {
	return s.subRepo.GetAllSubscriberTelegramIDs()
}

// ComposeDigest собирает текст дайджеста предложений для email-рассылки.
func (s *OfferService) ComposeDigest(deals []model.Package) string {
	var b strings.Builder
	b.WriteString("Лучшие предложения недели:\n\n")
	for i, p := range deals {
		fmt.Fprintf(&b, "%d. %s — %s\n   %s, от %d за пакет\n", i+1, p.Name, p.Location, p.Duration, p.Price)
	}
	b.WriteString("\nЗабронировать можно на сайте. Хорошей поездки!\n")
	return b.String()
}
