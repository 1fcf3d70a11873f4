package rest

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/service/chat"
)

var _ chatService = &chatServiceMock{}

// chatServiceMock is a hand-written test double for chatService.
// Set the *Func fields; calls are recorded for inspection.
type chatServiceMock struct {
	CompleteFunc func(ctx context.Context, input chat.CompleteInput) (*domain.Completion, error)
	StreamFunc   func(ctx context.Context, input chat.CompleteInput) (io.ReadCloser, error)
	ExampleFunc  func(ctx context.Context, input chat.CompleteInput) (json.RawMessage, error)

	calls struct {
		Complete []struct {
			Ctx   context.Context
			Input chat.CompleteInput
		}
		Stream []struct {
			Ctx   context.Context
			Input chat.CompleteInput
		}
		Example []struct {
			Ctx   context.Context
			Input chat.CompleteInput
		}
	}
	lockComplete sync.RWMutex
	lockStream   sync.RWMutex
	lockExample  sync.RWMutex
}

func (mock *chatServiceMock) Complete(ctx context.Context, input chat.CompleteInput) (*domain.Completion, error) {
	if mock.CompleteFunc == nil {
		panic("chatServiceMock.CompleteFunc: method is nil but chatService.Complete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chat.CompleteInput
	}{Ctx: ctx, Input: input}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, input)
}

func (mock *chatServiceMock) CompleteCalls() []struct {
	Ctx   context.Context
	Input chat.CompleteInput
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *chatServiceMock) Stream(ctx context.Context, input chat.CompleteInput) (io.ReadCloser, error) {
	if mock.StreamFunc == nil {
		panic("chatServiceMock.StreamFunc: method is nil but chatService.Stream was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chat.CompleteInput
	}{Ctx: ctx, Input: input}
	mock.lockStream.Lock()
	mock.calls.Stream = append(mock.calls.Stream, callInfo)
	mock.lockStream.Unlock()
	return mock.StreamFunc(ctx, input)
}

func (mock *chatServiceMock) StreamCalls() []struct {
	Ctx   context.Context
	Input chat.CompleteInput
} {
	mock.lockStream.RLock()
	calls := mock.calls.Stream
	mock.lockStream.RUnlock()
	return calls
}

func (mock *chatServiceMock) Example(ctx context.Context, input chat.CompleteInput) (json.RawMessage, error) {
	if mock.ExampleFunc == nil {
		panic("chatServiceMock.ExampleFunc: method is nil but chatService.Example was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chat.CompleteInput
	}{Ctx: ctx, Input: input}
	mock.lockExample.Lock()
	mock.calls.Example = append(mock.calls.Example, callInfo)
	mock.lockExample.Unlock()
	return mock.ExampleFunc(ctx, input)
}

func (mock *chatServiceMock) ExampleCalls() []struct {
	Ctx   context.Context
	Input chat.CompleteInput
} {
	mock.lockExample.RLock()
	calls := mock.calls.Example
	mock.lockExample.RUnlock()
	return calls
}
