package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/figliolo/bar-client/stores"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController builds spreadsheet exports for the reporting views.
type ReportController struct {
	Orders *stores.OrdersStore
}

// ClassOrdersExport handles GET /api/reports/ordinazioni?nTurno=&date= -
// streams the selected day's class orders as an xlsx workbook.
func (rc *ReportController) ClassOrdersExport(c *gin.Context) {
	turno, err := strconv.Atoi(c.Query("nTurno"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "nTurno must be an integer")
		return
	}
	if date := c.Query("date"); date != "" {
		rc.Orders.SetSelectedDate(date)
	}

	if !rc.Orders.FetchClassOrders(turno) {
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", rc.Orders.Error())
		return
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "Ordinazioni"
	index, err := f.NewSheet(sheet)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "REPORT_ERROR", "Failed to build report")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Classe", "Prodotto", "Quantita", "Prezzo", "Preparato", "Totale ordine"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(sheet, col+"1", h)
	}

	row := 2
	for _, order := range rc.Orders.ClassOrders() {
		total := stores.OrderTotal(order)
		for _, p := range order.Prodotti {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), order.Classe)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Nome)
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Quantita)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Prezzo)
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Preparato)
			_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), total)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "REPORT_ERROR", "Failed to serialize report")
		return
	}

	filename := fmt.Sprintf("ordinazioni-%s-turno%d.xlsx", rc.Orders.SelectedDate(), turno)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
