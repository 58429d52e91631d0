package feedback

import (
	"strings"

	myErr "feedbackhub/internal/types/errors"
	types "feedbackhub/internal/types/feedback"
)

const (
	minRating = 1
	maxRating = 5
)

// Значения по умолчанию для необязательных полей: в хранилище
// всегда лежит явное значение, а не пустая строка или null.
const (
	defaultName     = "Anonymous"
	defaultEmail    = "N/A"
	defaultCategory = "General"
)

// Validate - чистая проверка и нормализация присланного фидбека.
// Правила применяются по порядку, наружу уходит первая ошибка.
// Никаких побочных эффектов: один и тот же вход даёт один и тот же выход.
func Validate(s types.Submission) (types.Submission, error) {
	// id от клиента не принимаем ни при каких условиях
	s.ID = ""

	s.Comment = strings.TrimSpace(s.Comment)
	if s.Comment == "" {
		return types.Submission{}, myErr.ErrMissingComment
	}

	if s.Rating < minRating || s.Rating > maxRating {
		return types.Submission{}, myErr.ErrMissingRating
	}

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = defaultName
	}

	// email здесь - непрозрачный текст, формат не проверяем
	s.Email = strings.TrimSpace(s.Email)
	if s.Email == "" {
		s.Email = defaultEmail
	}

	s.Category = strings.TrimSpace(s.Category)
	if s.Category == "" {
		s.Category = defaultCategory
	}

	return s, nil
}
