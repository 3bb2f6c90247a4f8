package app

import (
	"strings"
	"testing"
)

func validFields() map[string]string {
	return map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"address":   "12 Main St.",
		"city":      "New York",
		"email":     "john@example.com",
	}
}

func TestValidate(t *testing.T) {
	svc := NewService()

	t.Run("all valid -> no errors", func(t *testing.T) {
		if errs := svc.Validate(validFields()); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("digit in first name", func(t *testing.T) {
		fields := validFields()
		fields["firstName"] = "John1"
		errs := svc.Validate(fields)
		if len(errs) != 1 || errs[0].Field != "firstName" {
			t.Fatalf("expected one firstName error, got %+v", errs)
		}
		if errs[0].Message != "Please enter a valid first name." {
			t.Fatalf("unexpected message: %q", errs[0].Message)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		fields := validFields()
		fields["email"] = "not-an-email"
		errs := svc.Validate(fields)
		if len(errs) != 1 || errs[0].Field != "email" {
			t.Fatalf("expected one email error, got %+v", errs)
		}
		if errs[0].Message != "Please enter a valid email address." {
			t.Fatalf("unexpected message: %q", errs[0].Message)
		}
	})

	t.Run("empty city is allowed", func(t *testing.T) {
		fields := validFields()
		fields["city"] = ""
		if errs := svc.Validate(fields); len(errs) != 0 {
			t.Fatalf("empty city should pass, got %+v", errs)
		}
	})

	t.Run("digits in city", func(t *testing.T) {
		fields := validFields()
		fields["city"] = "Area 51"
		errs := svc.Validate(fields)
		if len(errs) != 1 || errs[0].Field != "city" {
			t.Fatalf("expected one city error, got %+v", errs)
		}
	})

	t.Run("address has no format rule", func(t *testing.T) {
		fields := validFields()
		fields["address"] = "!!! anything goes 42 ???"
		if errs := svc.Validate(fields); len(errs) != 0 {
			t.Fatalf("address should not be validated, got %+v", errs)
		}
	})

	t.Run("all failures collected", func(t *testing.T) {
		fields := map[string]string{
			"firstName": "J0hn",
			"lastName":  "D03",
			"email":     "nope",
			"city":      "C1ty",
		}
		errs := svc.Validate(fields)
		if len(errs) != 4 {
			t.Fatalf("expected 4 errors, got %d: %+v", len(errs), errs)
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("invalid blocks navigation", func(t *testing.T) {
		svc := NewService()
		fields := validFields()
		fields["firstName"] = "John1"

		draft, conf, errs := svc.Submit(fields)
		if len(errs) == 0 {
			t.Fatal("expected validation errors")
		}
		if draft != nil || conf.Location != "" {
			t.Fatalf("no draft or navigation on failure, got draft=%+v conf=%+v", draft, conf)
		}
	})

	t.Run("valid produces draft and confirmation target", func(t *testing.T) {
		svc := NewService()

		draft, conf, errs := svc.Submit(validFields())
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %+v", errs)
		}
		if draft["email"] != "john@example.com" || draft["address"] != "12 Main St." {
			t.Fatalf("draft should carry all submitted fields, got %+v", draft)
		}
		if conf.OrderID < 0 || conf.OrderID >= 1_000_000_000 {
			t.Fatalf("order id out of range: %d", conf.OrderID)
		}
		if !strings.HasPrefix(conf.Location, "confirmation.html?orderId=") {
			t.Fatalf("unexpected location: %q", conf.Location)
		}
	})

	t.Run("order id comes from the generator", func(t *testing.T) {
		svc := NewService()
		svc.newOrderID = func() int64 { return 424242 }

		_, conf, errs := svc.Submit(validFields())
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %+v", errs)
		}
		if conf.OrderID != 424242 || conf.Location != "confirmation.html?orderId=424242" {
			t.Fatalf("unexpected confirmation: %+v", conf)
		}
	})
}
