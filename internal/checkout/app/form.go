package app

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
)

// Order ids are plain random integers used only to build the confirmation
// URL; this is not an order system and the value is not cryptographic.
const orderIDBound = 1_000_000_000

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]+$`)
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	cityRe  = regexp.MustCompile(`^[A-Za-z\s]*$`)
)

// Service validates the checkout form and produces the order draft plus the
// confirmation redirect target.
type Service struct {
	newOrderID func() int64
}

func NewService() *Service {
	return &Service{
		newOrderID: func() int64 { return rand.Int64N(orderIDBound) },
	}
}

// Validate runs every field rule independently and collects all failures;
// a bad first name does not hide a bad email. The address field is
// collected but carries no format rule.
func (s *Service) Validate(fields map[string]string) []domain.FieldError {
	var errs []domain.FieldError

	if !nameRe.MatchString(fields["firstName"]) {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "Please enter a valid first name."})
	}
	if !nameRe.MatchString(fields["lastName"]) {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Please enter a valid last name."})
	}
	if !emailRe.MatchString(fields["email"]) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please enter a valid email address."})
	}
	if !cityRe.MatchString(fields["city"]) {
		errs = append(errs, domain.FieldError{Field: "city", Message: "Please enter a valid city name (only alphabets and spaces allowed)."})
	}

	return errs
}

// Submit validates and, when everything passes, returns the order draft and
// the confirmation target. The cart is deliberately left untouched.
func (s *Service) Submit(fields map[string]string) (domain.OrderDraft, domain.Confirmation, []domain.FieldError) {
	if errs := s.Validate(fields); len(errs) > 0 {
		return nil, domain.Confirmation{}, errs
	}

	draft := make(domain.OrderDraft, len(fields))
	for name, value := range fields {
		draft[name] = value
	}

	orderID := s.newOrderID()
	return draft, domain.Confirmation{
		OrderID:  orderID,
		Location: fmt.Sprintf("confirmation.html?orderId=%d", orderID),
	}, nil
}
