package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// AuthService отвечает за регистрацию пользователей бота при первом обращении.
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// AuthUser находит пользователя по Telegram ID и регистрирует нового, если он не найден.
// Возвращает существующего или новосозданного пользователя.
func (s *AuthService) AuthUser(telegramID int64, username, firstName, lastName string) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			newUser := &model.User{
				TelegramID: telegramID,
				Username:   username,
				FirstName:  firstName,
				LastName:   lastName,
				Role:       "user", // все новые пользователи - обычные туристы
			}
			id, err := s.userRepo.Create(newUser)
			if err != nil {
				return nil, err
			}
			newUser.ID = id
			return newUser, nil
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return user, nil
}
