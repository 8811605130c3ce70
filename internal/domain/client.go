package domain

import (
	"regexp"
	"strings"
	"time"
)

// Client клиент бизнеса. Клиенты не глобальны: один и тот же номер телефона
// может существовать отдельной записью у каждого бизнеса.
type Client struct {
	ID             int64
	BusinessID     int64
	FullName       string
	Phone          string
	Email          *string
	TelegramChatID *int64
	CreatedAt      time.Time
}

// ServiceKey нормализованный ключ лояльности: имя услуги в нижнем регистре,
// пробелы заменены на подчёркивания. Мульти-сервисная запись (имена через
// запятую) даёт один составной ключ - накопление идёт по всей связке целиком.
type ServiceKey string

var whitespaceRe = regexp.MustCompile(`\s+`)

// NewServiceKey нормализует имя услуги в ключ лояльности
func NewServiceKey(serviceName string) ServiceKey {
	key := strings.ToLower(serviceName)
	key = whitespaceRe.ReplaceAllString(key, "_")
	return ServiceKey(key)
}

// String возвращает строковое представление ключа
func (k ServiceKey) String() string {
	return string(k)
}
