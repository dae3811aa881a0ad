package query

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nitish1238/travel-booking-app/internal/model"
)

// Веса релевантности: полное вхождение токена в текст пакета и совпадение по началу слова.
// Бонус за префикс суммируется с бонусом за вхождение, а не заменяет его.
const (
	substringScore = 10
	prefixScore    = 2
	minPrefixLen   = 3 // префиксный бонус начисляется только токенам от 3 символов
)

var nonWord = regexp.MustCompile(`\W+`)

// Search выполняет полнотекстовый поиск по каталогу и возвращает пакеты по убыванию
// релевантности. Пустой запрос возвращает каталог без изменений. Запрос разбивается
// на токены по пробелам; каждый токен сверяется с текстом пакета (название, направление,
// теги, описание). При равной релевантности сохраняется исходный порядок каталога.
func Search(q string, catalog []model.Package) []model.Package {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return catalog
	}
	tokens := strings.Fields(q)

	scored := make([]model.ScoredPackage, 0, len(catalog))
	for _, p := range catalog {
		text := searchText(p)
		words := nonWord.Split(text, -1)
		score := 0
		for _, t := range tokens {
			if strings.Contains(text, t) {
				score += substringScore
			}
			if utf8.RuneCountInString(t) >= minPrefixLen && hasWordWithPrefix(words, t) {
				score += prefixScore
			}
		}
		if score > 0 {
			scored = append(scored, model.ScoredPackage{Package: p, Score: score})
		}
	}

	// Ничего не набрало релевантность - пробуем простое вхождение всего запроса
	// в название или направление, без ранжирования.
	if len(scored) == 0 {
		return fallbackSearch(q, catalog)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	result := make([]model.Package, len(scored))
	for i, s := range scored {
		result[i] = s.Package
	}
	return result
}

// searchText собирает текст пакета, по которому выполняется поиск.
func searchText(p model.Package) string {
	return strings.ToLower(p.Name + " " + p.Location + " " + strings.Join(p.Tags, " ") + " " + p.Description)
}

// hasWordWithPrefix сообщает, начинается ли хотя бы одно слово текста с токена.
func hasWordWithPrefix(words []string, token string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, token) {
			return true
		}
	}
	return false
}

// fallbackSearch отбирает пакеты, название или направление которых содержит весь запрос.
// Результат идет в порядке каталога.
func fallbackSearch(q string, catalog []model.Package) []model.Package {
	result := []model.Package{}
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Location), q) {
			result = append(result, p)
		}
	}
	return result
}

// Filter отбирает пакеты по максимальной цене и подстроке длительности.
// Нулевая цена и пустая длительность означают отсутствие ограничения.
func Filter(packages []model.Package, maxPrice int, duration string) []model.Package {
	result := []model.Package{}
	for _, p := range packages {
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		if duration != "" && !strings.Contains(p.Duration, duration) {
			continue
		}
		result = append(result, p)
	}
	return result
}
