package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
)

// PurchaseService 购买摘要服务，摘要与订单最终一致，不参与下单事务
type PurchaseService struct {
	store repository.Store
}

// NewPurchaseService 创建购买摘要服务
func NewPurchaseService(store repository.Store) *PurchaseService {
	return &PurchaseService{store: store}
}

// DispatchPurchaseSummary 同步写入摘要，未启用任务队列时使用
func (s *PurchaseService) DispatchPurchaseSummary(ctx context.Context, orderID, _ uint) error {
	return s.RecordForOrder(ctx, orderID)
}

// RecordForOrder 按订单写入摘要，订单不存在时忽略，同一订单只写一次
func (s *PurchaseService) RecordForOrder(ctx context.Context, orderID uint) error {
	order, err := s.store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		logger.Warnw("purchase_summary_order_missing", "order_id", orderID)
		return nil
	}
	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		names = append(names, item.Name)
	}
	record := &models.PurchaseRecord{
		UserID:      order.UserID,
		OrderID:     order.ID,
		Products:    strings.Join(names, ", "),
		TotalAmount: order.TotalPrice,
	}
	if err := s.store.Purchases().Create(ctx, record); err != nil {
		return fmt.Errorf("create purchase record: %w", err)
	}
	return nil
}

// ListByUser 用户购买摘要
func (s *PurchaseService) ListByUser(ctx context.Context, userID uint) ([]models.PurchaseRecord, error) {
	records, err := s.store.Purchases().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchase records: %w", err)
	}
	if records == nil {
		records = []models.PurchaseRecord{}
	}
	return records, nil
}
