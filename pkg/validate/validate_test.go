package validate

import (
	"testing"

	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

type sampleInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Discount float64 `json:"discount" validate:"gte=0,lte=100"`
}

func TestStructPasses(t *testing.T) {
	if err := Struct(sampleInput{Name: "widget", Quantity: 2, Discount: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsFieldDetails(t *testing.T) {
	err := Struct(sampleInput{Quantity: 0, Discount: 150})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected typed validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	for _, field := range []string{"name", "quantity", "discount"} {
		if _, present := details[field]; !present {
			t.Fatalf("expected detail for %s, got %v", field, details)
		}
	}
}
