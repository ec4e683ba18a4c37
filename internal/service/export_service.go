package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sportshop-next/internal/repository"

	"github.com/tealeg/xlsx"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService 管理端 Excel 导出
type ExportService struct {
	store repository.Store
}

// NewExportService 创建导出服务
func NewExportService(store repository.Store) *ExportService {
	return &ExportService{store: store}
}

// ExportProducts 导出全部在售商品
func (s *ExportService) ExportProducts(ctx context.Context) ([]byte, error) {
	products, _, err := s.store.Products().List(ctx, repository.ProductListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}
	addRow(sheet, "ID", "Name", "Category", "Brand", "Price", "Stock", "Image", "CreatedAt")
	for _, p := range products {
		stock := ""
		if p.Stock != nil {
			stock = fmt.Sprintf("%d", *p.Stock)
		}
		addRow(sheet,
			p.ID, p.Name, p.Category, p.Brand, p.Price.String(), stock, p.Image,
			p.CreatedAt.Format(exportTimeLayout),
		)
	}
	return writeWorkbook(file)
}

// ExportOrders 导出全部订单
func (s *ExportService) ExportOrders(ctx context.Context) ([]byte, error) {
	orders, err := s.store.Orders().List(ctx, repository.OrderListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}
	addRow(sheet,
		"ID", "UserID", "Items", "TotalQuantity", "ItemsPrice", "TaxPrice", "ShippingPrice", "TotalPrice",
		"PaymentMethod", "IsPaid", "IsDelivered", "CreatedAt",
	)
	for _, o := range orders {
		lines := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}
		addRow(sheet,
			o.ID, o.UserID, strings.Join(lines, "; "), o.TotalQuantity,
			o.ItemsPrice.String(), o.TaxPrice.String(), o.ShippingPrice.String(), o.TotalPrice.String(),
			o.PaymentMethod, o.IsPaid, o.IsDelivered, o.CreatedAt.Format(exportTimeLayout),
		)
	}
	return writeWorkbook(file)
}

func addRow(sheet *xlsx.Sheet, values ...interface{}) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func writeWorkbook(file *xlsx.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
