package service

import (
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// UserService содержит бизнес-логику, связанную с пользователями бота.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService создает новый сервис пользователей.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID возвращает пользователя по ID.
func (s *UserService) GetByID(id int) (*model.User, error) {
	return s.userRepo.GetByID(id)
}
