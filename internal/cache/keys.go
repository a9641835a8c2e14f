package cache

import "fmt"

// GoalsKey возвращает ключ кеша списка целей пользователя.
func GoalsKey(userUID string) string {
	return fmt.Sprintf("goals:%s", userUID)
}

// AnalyticsKey возвращает ключ кеша аналитического отчёта пользователя.
// Мутации целей инвалидируют оба ключа: список и отчёт строятся
// по одному и тому же состоянию хранилища.
func AnalyticsKey(userUID string) string {
	return fmt.Sprintf("analytics:%s", userUID)
}
