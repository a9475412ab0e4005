// Package reports derives dashboard metrics from the cached collections.
// Every aggregation here is a pure function over already-loaded slices; the
// usecase wires them to the cache.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nutvale/admin-gateway/internal/model"
)

type CategoryValuation struct {
	Category   string          `json:"category"`
	Items      int             `json:"items"`
	TotalStock int             `json:"total_stock"`
	Value      decimal.Decimal `json:"value"`
}

// StockValuation groups products by category and accumulates unique-product
// count, total stock and stock value (stock × first-variant price), sorted by
// value descending.
func StockValuation(products []model.Product) []CategoryValuation {
	byCategory := make(map[string]*CategoryValuation)
	for i := range products {
		p := &products[i]
		name := p.CategoryName
		if name == "" {
			name = "Uncategorised"
		}
		group, ok := byCategory[name]
		if !ok {
			group = &CategoryValuation{Category: name, Value: decimal.Zero}
			byCategory[name] = group
		}
		stock := p.TotalStock()
		group.Items++
		group.TotalStock += stock
		group.Value = group.Value.Add(
			decimal.NewFromInt(int64(stock)).Mul(decimal.NewFromFloat(p.FirstVariantPrice())))
	}

	out := make([]CategoryValuation, 0, len(byCategory))
	for _, g := range byCategory {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

type ProductSales struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitsSold    int             `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// SalesByProduct accumulates order line items per product: units sold,
// revenue, and average unit price (zero when nothing sold), sorted by revenue
// descending.
func SalesByProduct(orders []model.Order) []ProductSales {
	byProduct := make(map[string]*ProductSales)
	for i := range orders {
		for _, item := range orders[i].Items {
			row, ok := byProduct[item.ProductID]
			if !ok {
				row = &ProductSales{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Revenue:     decimal.Zero,
				}
				byProduct[item.ProductID] = row
			}
			row.UnitsSold += item.Quantity
			row.Revenue = row.Revenue.Add(
				decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	out := make([]ProductSales, 0, len(byProduct))
	for _, row := range byProduct {
		if row.UnitsSold > 0 {
			row.AveragePrice = row.Revenue.Div(decimal.NewFromInt(int64(row.UnitsSold))).Round(2)
		} else {
			row.AveragePrice = decimal.Zero
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

type LowStockItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Severity  string `json:"severity"`
}

// LowStock flags products whose total stock is at or below the threshold
// (default 10). Zero stock is critical, anything else a warning.
func LowStock(products []model.Product, threshold int) []LowStockItem {
	if threshold <= 0 {
		threshold = 10
	}
	var out []LowStockItem
	for i := range products {
		p := &products[i]
		qty := p.TotalStock()
		if qty > threshold {
			continue
		}
		severity := SeverityWarning
		if qty == 0 {
			severity = SeverityCritical
		}
		out = append(out, LowStockItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			Severity:  severity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out
}
