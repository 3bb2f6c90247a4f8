package domain

// FieldError is one inline validation message, keyed by form field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OrderDraft is the submitted form as field name -> value. Built only at
// submit time, handed to the confirmation redirect, never persisted.
type OrderDraft map[string]string

// Confirmation is where a successful submit navigates to.
type Confirmation struct {
	OrderID  int64  `json:"orderId"`
	Location string `json:"location"`
}
