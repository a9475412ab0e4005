package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nutvale/admin-gateway/internal/reports"
	"github.com/nutvale/admin-gateway/internal/server"
)

type ReportsHandler struct {
	uc reports.UseCase
}

func NewReportsHandler(uc reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

func (h *ReportsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reports/valuation", h.valuation)
	mux.HandleFunc("GET /api/reports/valuation/export", h.exportValuationCSV)
	mux.HandleFunc("GET /api/reports/sales", h.sales)
	mux.HandleFunc("GET /api/reports/low-stock", h.lowStock)
	mux.HandleFunc("GET /api/reports/orders/export", h.exportOrdersCSV)
}

func (h *ReportsHandler) valuation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.Valuation(r.Context())
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]any{"items": rows})
}

func (h *ReportsHandler) sales(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.Sales(r.Context())
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]any{"items": rows})
}

func (h *ReportsHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.LowStockReport(r.Context())
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]any{"items": rows})
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM for spreadsheet apps

	buf.WriteString(strings.Join(header, ",") + "\r\n")
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, field := range row {
			quoted[i] = quoteAll(field)
		}
		buf.WriteString(strings.Join(quoted, ",") + "\r\n")
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	_, _ = w.Write(buf.Bytes())
}

func (h *ReportsHandler) exportValuationCSV(w http.ResponseWriter, r *http.Request) {
	groups, err := h.uc.Valuation(r.Context())
	if err != nil {
		server.WriteError(w, err)
		return
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Category,
			fmt.Sprintf("%d", g.Items),
			fmt.Sprintf("%d", g.TotalStock),
			g.Value.StringFixed(2),
		})
	}
	filename := fmt.Sprintf("stock-valuation-%s.csv", time.Now().Format("20060102"))
	writeCSV(w, filename, []string{"Category", "Products", "TotalStock", "Value"}, rows)
}

func (h *ReportsHandler) exportOrdersCSV(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.Orders(r.Context())
	if err != nil {
		server.WriteError(w, err)
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID,
			o.CustomerName,
			string(o.Status),
			o.PaymentMethod,
			fmt.Sprintf("%.2f", o.Total),
			o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102"))
	writeCSV(w, filename, []string{"OrderID", "Customer", "Status", "Payment", "Total", "PlacedAt"}, rows)
}
