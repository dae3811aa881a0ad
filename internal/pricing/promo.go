package pricing

import "strings"

// Действующие промокоды. Статичный список: внешнего сервиса промокодов нет.
var promoCodes = map[string]bool{
	"TRAVEL10": true,
	"WELCOME":  true,
}

// ValidatePromo сообщает, дает ли промокод право на скидку.
// Код сравнивается без учета регистра и пробелов по краям; пустая строка
// и любой неизвестный код - это обычный отказ, а не ошибка.
func ValidatePromo(code string) bool {
	return promoCodes[strings.ToUpper(strings.TrimSpace(code))]
}
