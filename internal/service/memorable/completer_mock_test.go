package memorable

import (
	"context"
	"sync"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

var _ completer = &completerMock{}

// completerMock is a hand-written test double for completer.
// Set the *Func fields; calls are recorded for inspection.
type completerMock struct {
	CreateChatCompletionFunc func(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)

	calls struct {
		CreateChatCompletion []struct {
			Ctx context.Context
			Req domain.CompletionRequest
		}
	}
	lockCreateChatCompletion sync.RWMutex
}

func (mock *completerMock) CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error) {
	if mock.CreateChatCompletionFunc == nil {
		panic("completerMock.CreateChatCompletionFunc: method is nil but completer.CreateChatCompletion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreateChatCompletion.Lock()
	mock.calls.CreateChatCompletion = append(mock.calls.CreateChatCompletion, callInfo)
	mock.lockCreateChatCompletion.Unlock()
	return mock.CreateChatCompletionFunc(ctx, req)
}

func (mock *completerMock) CreateChatCompletionCalls() []struct {
	Ctx context.Context
	Req domain.CompletionRequest
} {
	mock.lockCreateChatCompletion.RLock()
	calls := mock.calls.CreateChatCompletion
	mock.lockCreateChatCompletion.RUnlock()
	return calls
}
