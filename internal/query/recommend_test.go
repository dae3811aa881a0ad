package query

import (
	"testing"

	"github.com/nitish1238/travel-booking-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendExcludesBaseAndRespectsLimit(t *testing.T) {
	catalog := testCatalog()
	result := Recommend(1, catalog, 2)
	require.LessOrEqual(t, len(result), 2)
	for _, p := range result {
		assert.NotEqual(t, 1, p.ID)
	}
}

func TestRecommendUnknownIDReturnsEmpty(t *testing.T) {
	assert.Empty(t, Recommend(999, testCatalog(), 3))
}

func TestRecommendDefaultLimit(t *testing.T) {
	catalog := []model.Package{
		{ID: 1, Tags: []string{"a"}, Price: 1000, Name: "base", Location: "x"},
		{ID: 2, Tags: []string{"a"}, Price: 1000, Name: "p2", Location: "x"},
		{ID: 3, Tags: []string{"a"}, Price: 1000, Name: "p3", Location: "x"},
		{ID: 4, Tags: []string{"a"}, Price: 1000, Name: "p4", Location: "x"},
		{ID: 5, Tags: []string{"a"}, Price: 1000, Name: "p5", Location: "x"},
	}
	result := Recommend(1, catalog, 0)
	assert.Len(t, result, DefaultRecommendLimit)
}

func TestRecommendTagOverlapOutweighsPriceProximity(t *testing.T) {
	catalog := []model.Package{
		{ID: 1, Name: "base", Location: "x", Tags: []string{"beach", "nature"}, Price: 10000},
		// Два общих тега, но далекая цена: 2*20 + max(0, 30-40) = 40
		{ID: 2, Name: "far twin", Location: "x", Tags: []string{"beach", "nature"}, Price: 50000},
		// Ни одного общего тега, цена совпадает: 0 + 30 = 30
		{ID: 3, Name: "near stranger", Location: "x", Tags: []string{"heritage"}, Price: 10000},
	}
	result := Recommend(1, catalog, 3)
	require.Len(t, result, 2)
	assert.Equal(t, "far twin", result[0].Name)
	assert.Equal(t, "near stranger", result[1].Name)
}

func TestRecommendPriceScoreDecays(t *testing.T) {
	catalog := []model.Package{
		{ID: 1, Name: "base", Location: "x", Tags: nil, Price: 10000},
		{ID: 2, Name: "diff 9000", Location: "x", Tags: nil, Price: 19000},  // 30-9 = 21
		{ID: 3, Name: "diff 0", Location: "x", Tags: nil, Price: 10000},     // 30
		{ID: 4, Name: "diff 40000", Location: "x", Tags: nil, Price: 50000}, // floor(40) > 30 -> 0
	}
	result := Recommend(1, catalog, 3)
	require.Len(t, result, 3)
	assert.Equal(t, "diff 0", result[0].Name)
	assert.Equal(t, "diff 9000", result[1].Name)
	assert.Equal(t, "diff 40000", result[2].Name)
}

func TestRecommendCountsDuplicateCandidateTags(t *testing.T) {
	catalog := []model.Package{
		{ID: 1, Name: "base", Location: "x", Tags: []string{"beach"}, Price: 10000},
		// Дубликат тега у кандидата считается дважды: 2*20 + 30 = 70
		{ID: 2, Name: "double", Location: "x", Tags: []string{"beach", "beach"}, Price: 10000},
		// Один общий тег: 20 + 30 = 50
		{ID: 3, Name: "single", Location: "x", Tags: []string{"beach", "city"}, Price: 10000},
	}
	result := Recommend(1, catalog, 2)
	require.Len(t, result, 2)
	assert.Equal(t, "double", result[0].Name)
	assert.Equal(t, "single", result[1].Name)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	assert.Empty(t, Recommend(1, nil, 3))
}
