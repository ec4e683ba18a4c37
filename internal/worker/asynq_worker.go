package worker

import (
	"context"

	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/queue"

	"github.com/hibiken/asynq"
)

// PurchaseRecorder 写入购买摘要
type PurchaseRecorder interface {
	RecordForOrder(ctx context.Context, orderID uint) error
}

// Consumer 异步任务消费者
type Consumer struct {
	purchases PurchaseRecorder
}

// NewConsumer 创建消费者
func NewConsumer(purchases PurchaseRecorder) *Consumer {
	return &Consumer{purchases: purchases}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPurchaseSummary, c.handlePurchaseSummary)
}

func (c *Consumer) handlePurchaseSummary(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_purchase_summary_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParsePurchaseSummaryPayload(task)
	if err != nil {
		logger.Warnw("worker_purchase_summary_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_purchase_summary_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.purchases == nil {
		logger.Warnw("worker_purchase_summary_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.purchases.RecordForOrder(ctx, payload.OrderID); err != nil {
		logger.Warnw("worker_purchase_summary_failed", "order_id", payload.OrderID, "user_id", payload.UserID, "error", err)
		return err
	}
	return nil
}
