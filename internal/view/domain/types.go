package domain

import "strconv"

// Bounds for the per-row quantity control.
const (
	QuantityMin int64 = 0
	QuantityMax int64 = 100
)

// Row is one rendered cart line: persisted cart fields joined with the
// product attributes fetched for this render.
type Row struct {
	ProductID string  `json:"productId"`
	Color     string  `json:"color"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`

	QuantityMin int64 `json:"quantityMin"`
	QuantityMax int64 `json:"quantityMax"`
}

// View is the full reconciled page state: rows in storage order plus the
// totals over counted rows only.
type View struct {
	Rows          []Row   `json:"rows"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalPrice    float64 `json:"totalPrice"`
}

// FormatTotalPrice renders the price total fixed to two decimal places,
// "0.00" for an empty cart.
func (v View) FormatTotalPrice() string {
	return strconv.FormatFloat(v.TotalPrice, 'f', 2, 64)
}
