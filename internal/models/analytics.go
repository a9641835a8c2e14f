package models

// AnalyticsReport содержит агрегированную статистику по целям пользователя.
// CompletionRatio = Completed / Total, при Total = 0 равен нулю.
type AnalyticsReport struct {
	Total           int            `json:"total"`            // Общее количество целей
	Pending         int            `json:"pending"`          // Количество в статусе pending
	InProgress      int            `json:"in_progress"`      // Количество в статусе in_progress
	Completed       int            `json:"completed"`        // Количество в статусе completed
	ByPriority      map[string]int `json:"by_priority"`      // Количество по приоритетам
	CompletionRatio float64        `json:"completion_ratio"` // Доля выполненных целей
}
