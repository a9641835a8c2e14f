// Package models содержит доменные структуры, описывающие цель пользователя,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Статусы жизненного цикла цели. Переход разрешён между любыми двумя
// статусами, начальный статус новой цели — StatusPending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Приоритеты цели.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Goal представляет собой основную модель цели,
// используемую в бизнес-логике и хранилище.
// Поле DueDate может быть nil — это означает отсутствие срока.
type Goal struct {
	ID          string     `json:"id"`                 // Уникальный идентификатор цели
	UserUID     string     `json:"-"`                  // Идентификатор владельца
	Username    string     `json:"-"`                  // Имя владельца
	Title       string     `json:"title"`              // Заголовок цели
	Description string     `json:"description"`        // Описание (опционально)
	Status      string     `json:"status"`             // pending, in_progress или completed
	Priority    string     `json:"priority"`           // low, medium или high
	Category    string     `json:"category"`           // Категория цели
	DueDate     *time.Time `json:"due_date,omitempty"` // Срок выполнения
	CreatedAt   time.Time  `json:"created_at"`         // Дата создания
	UpdatedAt   time.Time  `json:"updated_at"`         // Дата последнего изменения
}

// DummyGoal используется для приёма данных из JSON-запроса на создание цели,
// прежде чем конвертировать их в Goal. Дата приходит строкой,
// чтобы её можно было валидировать и парсить вручную.
type DummyGoal struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`                   // Заголовок (обязателен)
	Description string `json:"description" validate:"max=2000"`                           // Описание
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`       // Приоритет
	Category    string `json:"category" validate:"max=100"`                               // Категория
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`         // Срок в формате 2006-01-02
}

// UpdateGoal описывает частичное обновление цели: применяются только
// присутствующие в запросе поля, поэтому все поля — указатели.
type UpdateGoal struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}
