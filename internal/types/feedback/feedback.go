package feedback

import (
	"context"
	"time"
)

// Submission - сырой фидбек от клиента, полям доверять нельзя.
// ID клиент может прислать, но он всегда отбрасывается при валидации:
// идентификаторы выдаёт только сервер.
type Submission struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Record - принятый и нормализованный фидбек, как он лежит в хранилище.
// После записи не изменяется и не удаляется.
type Record struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Category   string    `json:"category"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewRecord(s Submission, id string, receivedAt time.Time) *Record {
	return &Record{
		ID:         id,
		Name:       s.Name,
		Email:      s.Email,
		Category:   s.Category,
		Rating:     s.Rating,
		Comment:    s.Comment,
		ReceivedAt: receivedAt,
	}
}

// SubmitResponse - тело успешного ответа клиенту
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id"`
}

// FeedbackRepo - репозиторий для записи фидбека в хранилище
//
//go:generate mockgen -source=internal/types/feedback/feedback.go -destination=internal/mocks/mock_feedback_repo.go -package=mocks
type FeedbackRepo interface {
	// Create - кладёт запись в хранилище под ключом record.ID ровно один раз.
	// Транзиентные ошибки хранилища ретраит сам, фатальные возвращает сразу.
	Create(ctx context.Context, record *Record) error
}
