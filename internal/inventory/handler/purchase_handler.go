package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type PurchaseHandler struct {
	svc *service.PurchaseService
}

func NewPurchaseHandler(svc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	po, err := h.svc.Create(req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, po)
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	po, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, po)
}

func (h *PurchaseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.POListParams{
		Status:     c.Query("status"),
		SupplierID: c.Query("supplier_id"),
		Page:       page,
		Size:       size,
	}
	pos, total, err := h.svc.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"items": pos, "total": total, "page": page, "size": size})
}

func (h *PurchaseHandler) Approve(c *gin.Context) {
	po, err := h.svc.Approve(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, po)
}

func (h *PurchaseHandler) Receive(c *gin.Context) {
	var req struct {
		Items []service.ReceiveItemInput `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	status, err := h.svc.Receive(c.Request.Context(), c.Param("id"), req.Items, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": status})
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// Export writes all purchase orders and their lines into an xlsx workbook.
func (h *PurchaseHandler) Export(c *gin.Context) {
	pos, _, err := h.svc.List(repository.POListParams{
		Status: c.Query("status"),
		Page:   1,
		Size:   10000,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Purchase Orders"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"PO ID", "Supplier", "Status", "Created By", "Created At", "Approved At", "Item Product", "Ordered", "Received"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	row := 2
	for _, po := range pos {
		approvedAt := ""
		if po.ApprovedAt != nil {
			approvedAt = po.ApprovedAt.Format(time.RFC3339)
		}
		if len(po.Items) == 0 {
			writeExportRow(f, sheet, row, []interface{}{
				po.ID, po.SupplierName, po.Status, po.CreatedBy,
				po.CreatedAt.Format(time.RFC3339), approvedAt, "", "", "",
			})
			row++
			continue
		}
		for _, item := range po.Items {
			writeExportRow(f, sheet, row, []interface{}{
				po.ID, po.SupplierName, po.Status, po.CreatedBy,
				po.CreatedAt.Format(time.RFC3339), approvedAt,
				item.ProductID, item.OrderedQuantity, item.ReceivedQuantity,
			})
			row++
		}
	}

	filename := fmt.Sprintf("purchase-orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}

func writeExportRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
