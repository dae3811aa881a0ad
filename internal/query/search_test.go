package query

import (
	"testing"

	"github.com/nitish1238/travel-booking-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Package {
	return []model.Package{
		{ID: 1, Name: "Kerala Backwaters Escape", Location: "Alleppey, Kerala", Description: "Houseboat and quiet beaches", Tags: []string{"beach", "nature", "relaxation"}, Price: 24999, Duration: "5 Days / 4 Nights"},
		{ID: 2, Name: "Manali Adventure Trek", Location: "Manali, Himachal Pradesh", Description: "Trekking and paragliding", Tags: []string{"adventure", "mountains"}, Price: 12999, Duration: "4 Days / 3 Nights"},
		{ID: 3, Name: "Goa Beach Carnival", Location: "North Goa", Description: "Beach shacks and nightlife", Tags: []string{"beach", "party"}, Price: 15999, Duration: "4 Days / 3 Nights"},
		{ID: 4, Name: "Royal Rajasthan Tour", Location: "Jaipur, Rajasthan", Description: "Forts, palaces and bazaars", Tags: []string{"heritage", "culture"}, Price: 21999, Duration: "6 Days / 5 Nights"},
	}
}

func names(packages []model.Package) []string {
	out := make([]string, len(packages))
	for i, p := range packages {
		out[i] = p.Name
	}
	return out
}

func TestSearchEmptyQueryReturnsCatalogUnchanged(t *testing.T) {
	catalog := testCatalog()
	result := Search("", catalog)
	require.Len(t, result, len(catalog))
	assert.Equal(t, names(catalog), names(result))

	// Пробелы эквивалентны пустому запросу
	result = Search("   ", catalog)
	assert.Equal(t, names(catalog), names(result))
}

func TestSearchFindsPackageByName(t *testing.T) {
	result := Search("MANALI", testCatalog())
	require.NotEmpty(t, result)
	assert.Equal(t, "Manali Adventure Trek", result[0].Name)
}

func TestSearchRanksMoreTokenMatchesHigher(t *testing.T) {
	// "beach nature" полностью совпадает только у Кералы; у Гоа - лишь "beach"
	result := Search("beach nature", testCatalog())
	require.GreaterOrEqual(t, len(result), 2)
	assert.Equal(t, "Kerala Backwaters Escape", result[0].Name)
	assert.Equal(t, "Goa Beach Carnival", result[1].Name)
}

func TestSearchPrefixBonusStacksWithSubstring(t *testing.T) {
	catalog := []model.Package{
		// "each" входит только как часть слова "beaches": без префиксного бонуса
		{ID: 1, Name: "Coastal Trip", Location: "Goa", Description: "golden beaches", Tags: []string{"sun"}},
		// "each" есть и как подстрока, и как начало отдельного слова: +10+2
		{ID: 2, Name: "City Walk", Location: "Delhi", Description: "a guide for each traveller", Tags: []string{"city"}},
	}
	result := Search("each", catalog)
	require.Len(t, result, 2)
	assert.Equal(t, "City Walk", result[0].Name)
	assert.Equal(t, "Coastal Trip", result[1].Name)
}

func TestSearchShortTokenGetsNoPrefixBonus(t *testing.T) {
	catalog := []model.Package{
		{ID: 1, Name: "Alpha", Location: "X", Description: "go go go", Tags: nil},
		{ID: 2, Name: "Beta", Location: "Y", Description: "going", Tags: nil},
	}
	// Токен из двух символов: только бонус за вхождение, у обоих одинаковый.
	// При равных очках сохраняется порядок каталога.
	result := Search("go", catalog)
	require.Len(t, result, 2)
	assert.Equal(t, "Alpha", result[0].Name)
	assert.Equal(t, "Beta", result[1].Name)
}

func TestSearchKeepsCatalogOrderOnEqualScores(t *testing.T) {
	result := Search("beach", testCatalog())
	// Оба пляжных пакета набирают одинаковые очки - порядок каталога сохраняется
	require.Len(t, result, 2)
	assert.Equal(t, "Kerala Backwaters Escape", result[0].Name)
	assert.Equal(t, "Goa Beach Carnival", result[1].Name)
}

func TestSearchNoMatchesReturnsEmpty(t *testing.T) {
	result := Search("zzzz qqqq", testCatalog())
	assert.Empty(t, result)
}

func TestSearchEmptyCatalog(t *testing.T) {
	assert.Empty(t, Search("beach", nil))
	assert.Empty(t, Search("", nil))
}

func TestFallbackSearchMatchesNameAndLocation(t *testing.T) {
	catalog := testCatalog()
	result := fallbackSearch("north goa", catalog)
	require.Len(t, result, 1)
	assert.Equal(t, "Goa Beach Carnival", result[0].Name)

	assert.Empty(t, fallbackSearch("atlantis", catalog))
}

func TestFilterByPriceAndDuration(t *testing.T) {
	catalog := testCatalog()

	cheap := Filter(catalog, 16000, "")
	assert.Equal(t, []string{"Manali Adventure Trek", "Goa Beach Carnival"}, names(cheap))

	fourDays := Filter(catalog, 0, "4 Days")
	assert.Equal(t, []string{"Manali Adventure Trek", "Goa Beach Carnival"}, names(fourDays))

	both := Filter(catalog, 14000, "4 Days")
	assert.Equal(t, []string{"Manali Adventure Trek"}, names(both))

	// Нулевые фильтры ничего не отсекают
	assert.Len(t, Filter(catalog, 0, ""), len(catalog))
}
