package service

import "errors"

// Ошибки уровня сервисов, которые обработчики переводят в HTTP-статусы.
var (
	ErrPackageNotFound = errors.New("пакет не найден")
	ErrInvalidEmail    = errors.New("некорректный email")
)
