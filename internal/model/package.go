package model

// Package представляет туристический пакет (тур) из каталога.
type Package struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`     // ключевые слова категорий, порядок сохраняется для отображения
	Price       int      `json:"price"`    // цена за пакет в целых единицах валюты, всегда >= 0
	Duration    string   `json:"duration"` // длительность для отображения, например "5 Days / 4 Nights"
	Image       string   `json:"image"`
}

// ScoredPackage связывает пакет с релевантностью, вычисленной для конкретного запроса.
// Используется только внутри ранжирования и не сохраняется.
type ScoredPackage struct {
	Package Package
	Score   int
}
