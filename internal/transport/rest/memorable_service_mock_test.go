package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/service/memorable"
)

var _ memorableService = &memorableServiceMock{}

// memorableServiceMock is a hand-written test double for memorableService.
// Set the *Func fields; calls are recorded for inspection.
type memorableServiceMock struct {
	GenerateFunc func(ctx context.Context, input memorable.GenerateInput) (*domain.ComparisonResult, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input memorable.GenerateInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *memorableServiceMock) Generate(ctx context.Context, input memorable.GenerateInput) (*domain.ComparisonResult, error) {
	if mock.GenerateFunc == nil {
		panic("memorableServiceMock.GenerateFunc: method is nil but memorableService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input memorable.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *memorableServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input memorable.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
