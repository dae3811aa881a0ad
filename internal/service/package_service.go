package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/query"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// Лимиты подсказок поиска: без запроса показываем начало каталога, по запросу - лучшие совпадения.
const (
	suggestEmptyLimit = 6
	suggestQueryLimit = 8
)

// PackageService содержит бизнес-логику каталога: поиск, рекомендации и подборки.
type PackageService struct {
	store   *catalog.Store
	history *repository.SearchHistoryRepository // может быть nil, тогда история не ведется
}

// NewPackageService создает новый сервис каталога.
func NewPackageService(store *catalog.Store, history *repository.SearchHistoryRepository) *PackageService {
	return &PackageService{store: store, history: history}
}

// All возвращает весь каталог в исходном порядке.
func (s *PackageService) All() []model.Package {
	return s.store.All()
}

// GetByID возвращает пакет по идентификатору или nil.
func (s *PackageService) GetByID(id int) *model.Package {
	return s.store.GetByID(id)
}

// Featured возвращает случайный пакет для блока "предложение дня".
func (s *PackageService) Featured() *model.Package {
	return s.store.Featured()
}

// Search выполняет поиск по каталогу, применяет фильтры цены и длительности
// и записывает непустой запрос в историю клиента (best effort).
func (s *PackageService) Search(ctx context.Context, clientID, q string, maxPrice int, duration string) []model.Package {
	results := query.Search(q, s.store.All())
	if maxPrice > 0 || duration != "" {
		results = query.Filter(results, maxPrice, duration)
	}
	trimmed := strings.TrimSpace(q)
	if trimmed != "" && clientID != "" && s.history != nil {
		if err := s.history.Record(ctx, clientID, trimmed); err != nil {
			log.Printf("история поиска недоступна: %v", err)
		}
	}
	return results
}

// Suggest возвращает подсказки для строки поиска: при пустом запросе - первые пакеты
// каталога, иначе - лучшие результаты поиска.
func (s *PackageService) Suggest(q string) []model.Package {
	if strings.TrimSpace(q) == "" {
		all := s.store.All()
		if len(all) > suggestEmptyLimit {
			all = all[:suggestEmptyLimit]
		}
		return all
	}
	results := query.Search(q, s.store.All())
	if len(results) > suggestQueryLimit {
		results = results[:suggestQueryLimit]
	}
	return results
}

// Recommend подбирает пакеты, похожие на заданный.
func (s *PackageService) Recommend(packageID, limit int) []model.Package {
	return query.Recommend(packageID, s.store.All(), limit)
}

// Deals возвращает самые дешевые пакеты каталога для рассылок и рекламных блоков.
func (s *PackageService) Deals(limit int) []model.Package {
	deals := make([]model.Package, len(s.store.All()))
	copy(deals, s.store.All())
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].Price < deals[j].Price })
	if limit > 0 && len(deals) > limit {
		deals = deals[:limit]
	}
	return deals
}

// RecentSearches возвращает последние запросы клиента, новые первыми.
func (s *PackageService) RecentSearches(ctx context.Context, clientID string) ([]string, error) {
	if s.history == nil || clientID == "" {
		return []string{}, nil
	}
	return s.history.List(ctx, clientID)
}
