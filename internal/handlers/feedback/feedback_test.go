package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	handlers "feedbackhub/internal/handlers/feedback"
	"feedbackhub/internal/mocks"
	myErr "feedbackhub/internal/types/errors"
	types "feedbackhub/internal/types/feedback"
)

func newTestHandler(t *testing.T, repo types.FeedbackRepo) *handlers.FeedbackHandler {
	logger := zaptest.NewLogger(t).Sugar()
	return handlers.NewFeedbackHandler(logger, repo, nil, 3*time.Second)
}

func doSubmit(t *testing.T, h *handlers.FeedbackHandler, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	return w.Result()
}

func TestFeedbackHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(repo *mocks.MockFeedbackRepo)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: `{"comment":"Great service","rating":5,"name":"Alice","email":"a@x.com","category":"support"}`,
			mockBehavior: func(repo *mocks.MockFeedbackRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			// до репозитория дело не доходит
			name:           "empty comment",
			body:           `{"comment":"","rating":4}`,
			mockBehavior:   func(repo *mocks.MockFeedbackRepo) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please provide your feedback in the comment section.",
		},
		{
			name:           "zero rating",
			body:           `{"comment":"ok","rating":0}`,
			mockBehavior:   func(repo *mocks.MockFeedbackRepo) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please select a rating.",
		},
		{
			name:           "rating above range",
			body:           `{"comment":"ok","rating":6}`,
			mockBehavior:   func(repo *mocks.MockFeedbackRepo) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please select a rating.",
		},
		{
			name:           "invalid json",
			body:           `{invalid_json}`,
			mockBehavior:   func(repo *mocks.MockFeedbackRepo) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON in request body.",
		},
		{
			name: "store unavailable",
			body: `{"comment":"ok","rating":3}`,
			mockBehavior: func(repo *mocks.MockFeedbackRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(myErr.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Could not save your feedback. Please try again later.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockFeedbackRepo(ctrl)
			tc.mockBehavior(mockRepo)

			resp := doSubmit(t, newTestHandler(t, mockRepo), tc.body)

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			if tc.expectedError != "" {
				var body myErr.ErrorResponse
				err := json.NewDecoder(resp.Body).Decode(&body)
				assert.NoError(t, err)
				assert.False(t, body.Success)
				assert.Equal(t, tc.expectedError, body.Error)
			}
		})
	}
}

func TestFeedbackHandler_Submit_ResponseIDMatchesStorageKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)

	var storedID string
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *types.Record) error {
			storedID = record.ID
			return nil
		})

	resp := doSubmit(
		t,
		newTestHandler(t, mockRepo),
		`{"comment":"Great service","rating":5,"name":"Alice"}`,
	)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body types.SubmitResponse
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, storedID, body.ID)
	assert.Equal(t, "Feedback submitted successfully!", body.Message)
}

func TestFeedbackHandler_Submit_RecordIsNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)

	var stored *types.Record
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *types.Record) error {
			stored = record
			return nil
		})

	// клиентский id отбрасывается, пустые поля получают значения по умолчанию
	resp := doSubmit(
		t,
		newTestHandler(t, mockRepo),
		`{"id":"client-id","comment":"  ok  ","rating":2}`,
	)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotNil(t, stored)
	assert.NotEqual(t, "client-id", stored.ID)
	assert.Equal(t, "ok", stored.Comment)
	assert.Equal(t, 2, stored.Rating)
	assert.Equal(t, "Anonymous", stored.Name)
	assert.Equal(t, "N/A", stored.Email)
	assert.Equal(t, "General", stored.Category)
	assert.False(t, stored.ReceivedAt.IsZero())
}

func TestFeedbackHandler_Submit_NoRawStoreErrorLeaked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(myErr.ErrStoreRejected)

	resp := doSubmit(t, newTestHandler(t, mockRepo), `{"comment":"ok","rating":3}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body myErr.ErrorResponse
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(body.Error, "store"))
	assert.False(t, strings.Contains(body.Error, "redis"))
}

func TestFeedbackHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
	w := httptest.NewRecorder()

	h.MethodNotAllowed(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body myErr.ErrorResponse
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	assert.Equal(t, "Method Not Allowed", body.Error)
}
