package feedback

import "github.com/google/uuid"

// NewID - уникальный идентификатор записи: UUIDv7, то есть
// момент времени с высокой точностью плюс криптографически случайный хвост.
// Инстансы сервиса ничего между собой не координируют, поэтому
// счётчики не подходят - только такой составной идентификатор.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
