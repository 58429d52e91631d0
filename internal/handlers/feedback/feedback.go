package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"feedbackhub/internal/feedback"
	"feedbackhub/internal/kafka"
	myErr "feedbackhub/internal/types/errors"
	types "feedbackhub/internal/types/feedback"
)

const successMessage = "Feedback submitted successfully!"

const eventTimeout = time.Second

type FeedbackHandler struct {
	Logger             *zap.SugaredLogger
	FeedbackRepository types.FeedbackRepo
	Events             kafka.EventProducer
	storeTimeout       time.Duration
}

func NewFeedbackHandler(
	l *zap.SugaredLogger,
	repo types.FeedbackRepo,
	events kafka.EventProducer,
	storeTimeout time.Duration,
) *FeedbackHandler {
	return &FeedbackHandler{
		Logger:             l,
		FeedbackRepository: repo,
		Events:             events,
		storeTimeout:       storeTimeout,
	}
}

// Submit - приём одного фидбека: распарсить, провалидировать,
// выдать id, записать в хранилище, ответить клиенту.
// Между запросами никакого состояния нет.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub types.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	normalized, err := feedback.Validate(sub)
	if err != nil {
		// валидация не прошла - в хранилище не ходим
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)

		return
	}

	record := types.NewRecord(normalized, feedback.NewID(), time.Now().UTC())

	ctx, cancel := context.WithTimeout(r.Context(), h.storeTimeout)
	defer cancel()

	if err := h.FeedbackRepository.Create(ctx, record); err != nil {
		// клиенту уходит общая формулировка, детали хранилища только в лог
		h.Logger.Errorw(
			"Failed to store feedback",
			"feedback_id", record.ID,
			"error", err,
		)
		myErr.SendErrorTo(w, myErr.ErrStorageFailed, http.StatusInternalServerError, h.Logger)

		return
	}

	h.notifyReceived(record)

	w.Header().Set("Content-Type", "application/json")
	resp := types.SubmitResponse{
		Success: true,
		Message: successMessage,
		ID:      record.ID,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Error(err)

		return
	}

	h.Logger.Infof("Accepted feedback with id: %s", record.ID)
}

// MethodNotAllowed - ответ на методы кроме POST/OPTIONS
func (h *FeedbackHandler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	myErr.SendErrorTo(w, myErr.ErrMethodNotAllowed, http.StatusMethodNotAllowed, h.Logger)
}

// notifyReceived - best-effort событие в Kafka.
// Запись уже лежит в хранилище, поэтому ошибка продюсера на ответ не влияет.
func (h *FeedbackHandler) notifyReceived(record *types.Record) {
	if h.Events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	event := kafka.Event{
		FeedbackID: record.ID,
		Type:       kafka.EventTypeFeedbackReceived,
		Category:   record.Category,
		Rating:     record.Rating,
		Timestamp:  record.ReceivedAt,
	}
	if err := h.Events.SendEvent(ctx, event); err != nil {
		h.Logger.Warnf("Failed to publish feedback event: %v", err)
	}
}
