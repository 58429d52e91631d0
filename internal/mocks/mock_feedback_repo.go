package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	types "feedbackhub/internal/types/feedback"
)

// MockFeedbackRepo мок для FeedbackRepo
type MockFeedbackRepo struct {
	ctrl     *gomock.Controller
	recorder *MockFeedbackRepoMockRecorder
}

func NewMockFeedbackRepo(ctrl *gomock.Controller) *MockFeedbackRepo {
	mock := &MockFeedbackRepo{ctrl: ctrl}
	mock.recorder = &MockFeedbackRepoMockRecorder{mock}
	return mock
}

func (m *MockFeedbackRepo) EXPECT() *MockFeedbackRepoMockRecorder {
	return m.recorder
}

func (m *MockFeedbackRepo) Create(ctx context.Context, record *types.Record) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

type MockFeedbackRepoMockRecorder struct {
	mock *MockFeedbackRepo
}

func (mr *MockFeedbackRepoMockRecorder) Create(ctx, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Create",
		reflect.TypeOf((*MockFeedbackRepo)(nil).Create),
		ctx,
		record,
	)
}
