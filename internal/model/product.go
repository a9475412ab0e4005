package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	StockStatusIn      = "In Stock"
	StockStatusPartial = "Partially In Stock"
	StockStatusOut     = "Out of Stock"
)

type Product struct {
	Meta
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	SubCategoryID   string    `json:"subcategory_id"`
	SubCategoryName string    `json:"subcategory_name"`
	Variants        []Variant `json:"variants"`
	Images          []string  `json:"images"`
	Rating          float64   `json:"rating"`
	Status          string    `json:"status"`
}

// Variant is one sellable pack size of a product (e.g. "250g", "1kg").
type Variant struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
	MRP   float64 `json:"mrp"`
	Stock int     `json:"stock"`
}

func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// StockStatus classifies a product by its variant stock levels: out of stock
// when every variant is empty, partially in stock when some but not all are
// empty, otherwise in stock.
func (p *Product) StockStatus() string {
	if len(p.Variants) == 0 {
		return StockStatusOut
	}
	empty := 0
	for _, v := range p.Variants {
		if v.Stock == 0 {
			empty++
		}
	}
	switch empty {
	case 0:
		return StockStatusIn
	case len(p.Variants):
		return StockStatusOut
	default:
		return StockStatusPartial
	}
}

// FirstVariantPrice is the fallback unit price used by stock valuation when a
// product has no per-variant breakdown in the report.
func (p *Product) FirstVariantPrice() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price
}

var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("₹%v", number.Decimal(v))
}

// PriceRange renders the variant price spread, collapsing to a single value
// when all variants share one price.
func (p *Product) PriceRange() string {
	if len(p.Variants) == 0 {
		return ""
	}
	min, max := p.Variants[0].Price, p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	if min == max {
		return FormatPrice(min)
	}
	return FormatPrice(min) + " – " + FormatPrice(max)
}

const (
	VisibilityActive = "Active"
	VisibilityHidden = "Hidden"
)

type Category struct {
	Meta
	Name            string `json:"name"`
	Image           string `json:"image"`
	Status          string `json:"status"`
	ShowInNavbar    bool   `json:"show_in_navbar"`
	ShowInShopStrip bool   `json:"show_in_shop_strip"`
	DisplayOrder    int    `json:"display_order"`
}

// SubCategory always belongs to exactly one parent category.
type SubCategory struct {
	Meta
	Name         string `json:"name"`
	Image        string `json:"image"`
	Status       string `json:"status"`
	ParentID     string `json:"parent_id"`
	DisplayOrder int    `json:"display_order"`
}

// Combo is a curated bundle of products sold at its own price point.
type Combo struct {
	Meta
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
	Image      string   `json:"image"`
	Price      float64  `json:"price"`
	MRP        float64  `json:"mrp"`
	Stock      int      `json:"stock"`
	Status     string   `json:"status"`
}

// Offer is a promotional placement pointing at a set of products.
type Offer struct {
	Meta
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	ProductIDs []string `json:"product_ids"`
	Active     bool     `json:"active"`
}
