package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/nitish1238/travel-booking-app/internal/model"
)

// Store хранит неизменяемый каталог пакетов, загруженный один раз при старте приложения.
type Store struct {
	packages []model.Package
	byID     map[int]model.Package
}

// Load читает каталог из JSON-файла и проверяет его корректность.
// Некорректный каталог - это ошибка конфигурации, поэтому загрузка падает сразу.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл каталога %s: %w", path, err)
	}
	var packages []model.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("некорректный JSON каталога %s: %w", path, err)
	}
	return New(packages)
}

// New строит каталог из готового набора пакетов (используется загрузчиком и тестами).
func New(packages []model.Package) (*Store, error) {
	byID := make(map[int]model.Package, len(packages))
	for i, p := range packages {
		if p.Name == "" {
			return nil, fmt.Errorf("пакет #%d: отсутствует название", i)
		}
		if p.Location == "" {
			return nil, fmt.Errorf("пакет #%d (%s): отсутствует направление", i, p.Name)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("пакет #%d (%s): отрицательная цена %d", i, p.Name, p.Price)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("дублирующийся идентификатор пакета: %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Store{packages: packages, byID: byID}, nil
}

// All возвращает все пакеты в исходном порядке каталога.
func (s *Store) All() []model.Package {
	return s.packages
}

// Len возвращает количество пакетов в каталоге.
func (s *Store) Len() int {
	return len(s.packages)
}

// GetByID возвращает пакет по идентификатору или nil, если пакет не найден.
func (s *Store) GetByID(id int) *model.Package {
	p, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &p
}

// Featured возвращает случайный пакет каталога для блока "предложение дня".
func (s *Store) Featured() *model.Package {
	if len(s.packages) == 0 {
		return nil
	}
	p := s.packages[rand.Intn(len(s.packages))]
	return &p
}
