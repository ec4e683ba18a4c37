package admin

import (
	"fmt"
	"net/http"
	"time"

	handlershared "github.com/sportshop-next/internal/http/handlers/shared"
	"github.com/sportshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProducts 导出商品 Excel
func (h *Handler) ExportProducts(c *gin.Context) {
	data, err := h.ExportService.ExportProducts(c.Request.Context())
	if err != nil {
		handlershared.RespondError(c, response.CodeInternal, "error.export_failed", err)
		return
	}
	writeWorkbook(c, "products", data)
}

// ExportOrders 导出订单 Excel
func (h *Handler) ExportOrders(c *gin.Context) {
	data, err := h.ExportService.ExportOrders(c.Request.Context())
	if err != nil {
		handlershared.RespondError(c, response.CodeInternal, "error.export_failed", err)
		return
	}
	writeWorkbook(c, "orders", data)
}

func writeWorkbook(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, xlsxContentType, data)
}
