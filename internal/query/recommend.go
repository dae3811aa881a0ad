package query

import (
	"sort"

	"github.com/nitish1238/travel-booking-app/internal/model"
)

// Веса похожести: каждый общий тег дает 20 очков, близость цены - до 30 очков
// с затуханием в 1 очко на каждую 1000 единиц разницы.
const (
	tagScore      = 20
	priceScoreMax = 30
	priceStep     = 1000
)

// DefaultRecommendLimit - количество рекомендаций по умолчанию.
const DefaultRecommendLimit = 3

// Recommend подбирает пакеты, похожие на заданный, по пересечению тегов и близости цены.
// Сам базовый пакет в результат не попадает. Если пакет с таким id отсутствует,
// возвращается пустой список. При limit <= 0 используется DefaultRecommendLimit.
func Recommend(packageID int, catalog []model.Package, limit int) []model.Package {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	var base *model.Package
	for i := range catalog {
		if catalog[i].ID == packageID {
			base = &catalog[i]
			break
		}
	}
	if base == nil {
		return []model.Package{}
	}

	baseTags := make(map[string]bool, len(base.Tags))
	for _, t := range base.Tags {
		baseTags[t] = true
	}

	scored := make([]model.ScoredPackage, 0, len(catalog))
	for _, p := range catalog {
		if p.ID == base.ID {
			continue
		}
		overlap := 0
		for _, t := range p.Tags {
			if baseTags[t] {
				overlap++
			}
		}
		diff := p.Price - base.Price
		if diff < 0 {
			diff = -diff
		}
		priceScore := priceScoreMax - diff/priceStep
		if priceScore < 0 {
			priceScore = 0
		}
		scored = append(scored, model.ScoredPackage{Package: p, Score: overlap*tagScore + priceScore})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	result := make([]model.Package, len(scored))
	for i, s := range scored {
		result[i] = s.Package
	}
	return result
}
