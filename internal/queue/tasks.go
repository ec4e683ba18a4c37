package queue

import (
	"encoding/json"

	"github.com/sportshop-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPurchaseSummary 下单后写入购买摘要
	TaskPurchaseSummary = constants.TaskPurchaseSummary
)

// PurchaseSummaryPayload 购买摘要任务载荷
type PurchaseSummaryPayload struct {
	OrderID uint `json:"order_id"`
	UserID  uint `json:"user_id"`
}

// NewPurchaseSummaryTask 创建购买摘要任务
func NewPurchaseSummaryTask(payload PurchaseSummaryPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPurchaseSummary, body), nil
}

// ParsePurchaseSummaryPayload 解析购买摘要任务载荷
func ParsePurchaseSummaryPayload(task *asynq.Task) (PurchaseSummaryPayload, error) {
	var payload PurchaseSummaryPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
