package service

import (
	"strings"
	"time"

	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/pricing"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// SupportService содержит логику приема обращений в поддержку с сайта и из бота.
type SupportService struct {
	msgRepo  *repository.MessageRepository
	userRepo *repository.UserRepository
}

// NewSupportService создает новый сервис поддержки.
func NewSupportService(msgRepo *repository.MessageRepository, userRepo *repository.UserRepository) *SupportService {
	return &SupportService{msgRepo: msgRepo, userRepo: userRepo}
}

// SubmitWeb сохраняет обращение, отправленное через форму на сайте.
func (s *SupportService) SubmitWeb(email, content string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !pricing.ValidEmail(email) {
		return ErrInvalidEmail
	}
	return s.msgRepo.Save(&model.SupportMessage{
		Email:     email,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	})
}

// SubmitFromUser сохраняет обращение пользователя бота.
func (s *SupportService) SubmitFromUser(userID int, content string) error {
	return s.msgRepo.Save(&model.SupportMessage{
		UserID:    &userID,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	})
}

// RecentMessages возвращает последние обращения для операторов поддержки.
func (s *SupportService) RecentMessages(limit int) ([]model.SupportMessage, error) {
	return s.msgRepo.ListRecent(limit)
}

// Admins возвращает операторов поддержки (пользователей с ролью "admin").
func (s *SupportService) Admins() ([]model.User, error) {
	return s.userRepo.ListByRole("admin")
}
