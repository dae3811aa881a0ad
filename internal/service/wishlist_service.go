package service

import (
	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// WishlistService содержит логику работы с избранными пакетами клиентов.
type WishlistService struct {
	store    *catalog.Store
	wishRepo *repository.WishlistRepository
}

// NewWishlistService создает новый сервис избранного.
func NewWishlistService(store *catalog.Store, wishRepo *repository.WishlistRepository) *WishlistService {
	return &WishlistService{store: store, wishRepo: wishRepo}
}

// Toggle добавляет пакет в избранное клиента или убирает, если он уже там.
// Возвращает новое состояние: true - пакет в избранном.
func (s *WishlistService) Toggle(clientID string, packageID int) (bool, error) {
	if s.store.GetByID(packageID) == nil {
		return false, ErrPackageNotFound
	}
	in, err := s.wishRepo.Contains(clientID, packageID)
	if err != nil {
		return false, err
	}
	if in {
		return false, s.wishRepo.Remove(clientID, packageID)
	}
	return true, s.wishRepo.Add(clientID, packageID)
}

// List возвращает пакеты из избранного клиента в порядке добавления.
func (s *WishlistService) List(clientID string) ([]model.Package, error) {
	ids, err := s.wishRepo.ListPackageIDs(clientID)
	if err != nil {
		return nil, err
	}
	packages := []model.Package{}
	for _, id := range ids {
		if p := s.store.GetByID(id); p != nil {
			packages = append(packages, *p)
		}
	}
	return packages, nil
}
