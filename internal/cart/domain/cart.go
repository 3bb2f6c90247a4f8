package domain

// LineItem is one cart row: a product in a chosen color with a quantity.
// Identity within a cart is the ProductID+Color pair, so the same product
// can appear once per color.
type LineItem struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Quantity  int64  `json:"quantity"`
}

func (l LineItem) Is(productID, color string) bool {
	return l.ProductID == productID && l.Color == color
}

// Cart is the ordered list of line items for the current session.
// Order is meaningful: it is the order rows are rendered in.
type Cart []LineItem

func (c Cart) Find(productID, color string) (int, bool) {
	for i, it := range c {
		if it.Is(productID, color) {
			return i, true
		}
	}
	return -1, false
}
