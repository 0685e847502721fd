package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Reconciles(t *testing.T) {
	reconciler := mocks.NewMockSessionReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 50*time.Millisecond, log)

	reconciled := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid},
	}
	reconciler.EXPECT().ReconcileStaleSessions(mock.Anything).Return(reconciled, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	reconciler.AssertCalled(t, "ReconcileStaleSessions", mock.Anything)
}

func TestScheduler_Tick_SurvivesErrors(t *testing.T) {
	reconciler := mocks.NewMockSessionReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 20*time.Millisecond, log)

	reconciler.EXPECT().ReconcileStaleSessions(mock.Anything).Return(nil, errors.New("db down"))

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// A failing tick must not stop the loop.
	assert.GreaterOrEqual(t, len(reconciler.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reconciler := mocks.NewMockSessionReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
