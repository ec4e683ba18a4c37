package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/sportshop-next/internal/queue"

	"github.com/hibiken/asynq"
)

type fakeRecorder struct {
	orderIDs []uint
	err      error
}

func (f *fakeRecorder) RecordForOrder(_ context.Context, orderID uint) error {
	f.orderIDs = append(f.orderIDs, orderID)
	return f.err
}

func TestHandlePurchaseSummaryRecordsOrder(t *testing.T) {
	recorder := &fakeRecorder{}
	consumer := NewConsumer(recorder)
	task, err := queue.NewPurchaseSummaryTask(queue.PurchaseSummaryPayload{OrderID: 42, UserID: 7})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}

	if err := consumer.handlePurchaseSummary(context.Background(), task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if len(recorder.orderIDs) != 1 || recorder.orderIDs[0] != 42 {
		t.Fatalf("unexpected recorded orders: %v", recorder.orderIDs)
	}
}

func TestHandlePurchaseSummarySkipsInvalidPayload(t *testing.T) {
	recorder := &fakeRecorder{}
	consumer := NewConsumer(recorder)

	if err := consumer.handlePurchaseSummary(context.Background(), asynq.NewTask(queue.TaskPurchaseSummary, []byte(`{"order_id":0}`))); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
	if err := consumer.handlePurchaseSummary(context.Background(), asynq.NewTask(queue.TaskPurchaseSummary, []byte(`not-json`))); err == nil {
		t.Fatalf("malformed payload should fail")
	}
	if len(recorder.orderIDs) != 0 {
		t.Fatalf("recorder should not be called, got %v", recorder.orderIDs)
	}
}

func TestHandlePurchaseSummaryReturnsRecorderError(t *testing.T) {
	boom := errors.New("db down")
	consumer := NewConsumer(&fakeRecorder{err: boom})
	task, _ := queue.NewPurchaseSummaryTask(queue.PurchaseSummaryPayload{OrderID: 1})

	if err := consumer.handlePurchaseSummary(context.Background(), task); !errors.Is(err, boom) {
		t.Fatalf("expected recorder error for retry, got %v", err)
	}
}
