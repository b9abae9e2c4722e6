package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"adspend/internal/core/domain"
	"adspend/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunRecomputesUntilCancelled(t *testing.T) {
	svc := mocks.NewMockSpendUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	svc.EXPECT().Recompute(mock.Anything).RunAndReturn(func(context.Context) (*domain.BatchResult, error) {
		if calls.Add(1) == 3 {
			cancel()
		}
		return &domain.BatchResult{RunID: "r"}, nil
	})

	done := make(chan struct{})
	go func() {
		New(svc, 5*time.Millisecond, discard).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestRunKeepsGoingAfterErrors(t *testing.T) {
	svc := mocks.NewMockSpendUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	svc.EXPECT().Recompute(mock.Anything).RunAndReturn(func(context.Context) (*domain.BatchResult, error) {
		if calls.Add(1) == 2 {
			cancel()
		}
		return nil, errors.Join(domain.ErrReadFailure, errors.New("redis down"))
	})

	New(svc, time.Millisecond, discard).Run(ctx)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestRunDisabled(t *testing.T) {
	svc := mocks.NewMockSpendUseCase(t)

	New(svc, 0, discard).Run(context.Background())
	svc.AssertNotCalled(t, "Recompute", mock.Anything)
}
