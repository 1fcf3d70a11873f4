package chat

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

var _ chatModel = &chatModelMock{}

// chatModelMock is a hand-written test double for chatModel.
// Set the *Func fields; calls are recorded for inspection.
type chatModelMock struct {
	CreateChatCompletionFunc func(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)
	StreamChatCompletionFunc func(ctx context.Context, req domain.CompletionRequest) (io.ReadCloser, error)

	calls struct {
		CreateChatCompletion []struct {
			Ctx context.Context
			Req domain.CompletionRequest
		}
		StreamChatCompletion []struct {
			Ctx context.Context
			Req domain.CompletionRequest
		}
	}
	lockCreateChatCompletion sync.RWMutex
	lockStreamChatCompletion sync.RWMutex
}

func (mock *chatModelMock) CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error) {
	if mock.CreateChatCompletionFunc == nil {
		panic("chatModelMock.CreateChatCompletionFunc: method is nil but chatModel.CreateChatCompletion was just called")
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

func (mock *chatModelMock) CreateChatCompletionCalls() []struct {
	Ctx context.Context
	Req domain.CompletionRequest
} {
	mock.lockCreateChatCompletion.RLock()
	calls := mock.calls.CreateChatCompletion
	mock.lockCreateChatCompletion.RUnlock()
	return calls
}

func (mock *chatModelMock) StreamChatCompletion(ctx context.Context, req domain.CompletionRequest) (io.ReadCloser, error) {
	if mock.StreamChatCompletionFunc == nil {
		panic("chatModelMock.StreamChatCompletionFunc: method is nil but chatModel.StreamChatCompletion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockStreamChatCompletion.Lock()
	mock.calls.StreamChatCompletion = append(mock.calls.StreamChatCompletion, callInfo)
	mock.lockStreamChatCompletion.Unlock()
	return mock.StreamChatCompletionFunc(ctx, req)
}

func (mock *chatModelMock) StreamChatCompletionCalls() []struct {
	Ctx context.Context
	Req domain.CompletionRequest
} {
	mock.lockStreamChatCompletion.RLock()
	calls := mock.calls.StreamChatCompletion
	mock.lockStreamChatCompletion.RUnlock()
	return calls
}
