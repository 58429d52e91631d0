package kafka

import "time"

type EventType string

const (
	EventTypeFeedbackReceived EventType = "feedbackReceived"
)

type Event struct {
	FeedbackID string    `json:"feedback_id"`
	Type       EventType `json:"type"`
	Category   string    `json:"category"`
	Rating     int       `json:"rating"`
	Timestamp  time.Time `json:"timestamp"`
}
