package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

type addItemBody struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"product_id":"1","quantity":2}`))
	var body addItemBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ProductID != "1" || body.Quantity == nil || *body.Quantity != 2 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyValidation(t *testing.T) {
	cases := map[string]string{
		"empty":   ``,
		"unknown": `{"product_id":"1","color":"red"}`,
		"missing": `{"quantity":1}`,
		"min":     `{"product_id":"1","quantity":0}`,
		"type":    `{"product_id":"1","quantity":"two"}`,
	}
	for name, raw := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(raw))
		var body addItemBody
		err := DecodeJSONBody(req, &body)
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"quantity":0}`))
	var body addItemBody
	typed := pkgerrors.As(DecodeJSONBody(req, &body))
	details, _ := typed.Details().(map[string]string)
	if details["product_id"] != "is required" || details["quantity"] != "must be at least 1" {
		t.Fatalf("unexpected field details %v", typed.Details())
	}
}

func TestParseQueryHelpers(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=10&min_price=12.50&min_rating=4.5&in_stock=true", nil)

	if v, err := ParseQueryInt(req, "limit", 24, 1, 100); err != nil || v != 10 {
		t.Fatalf("limit: %v %v", v, err)
	}
	if v, err := ParseQueryDecimal(req, "min_price", decimal.Zero); err != nil || !v.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("min_price: %v %v", v, err)
	}
	if v, err := ParseQueryDecimal(req, "max_price", decimal.NewFromInt(3000)); err != nil || !v.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("max_price default: %v %v", v, err)
	}
	if v, err := ParseQueryFloat(req, "min_rating", 0, 0, 5); err != nil || v != 4.5 {
		t.Fatalf("min_rating: %v %v", v, err)
	}
	if v, err := ParseQueryBool(req, "in_stock", false); err != nil || !v {
		t.Fatalf("in_stock: %v %v", v, err)
	}
}

func TestParseQueryRejectsBadInput(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=abc&min_price=-1&min_rating=9&in_stock=maybe", nil)

	if _, err := ParseQueryInt(req, "limit", 24, 1, 100); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected limit error, got %v", err)
	}
	if _, err := ParseQueryDecimal(req, "min_price", decimal.Zero); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected min_price error, got %v", err)
	}
	if _, err := ParseQueryFloat(req, "min_rating", 0, 0, 5); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected min_rating error, got %v", err)
	}
	if _, err := ParseQueryBool(req, "in_stock", false); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected in_stock error, got %v", err)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  electronics  ", 0); got != "electronics" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("gam\x00ing", 0); got != "gaming" {
		t.Fatalf("control characters should be dropped, got %q", got)
	}
	if got := SanitizeString("ñandú", 3); got != "ñan" {
		t.Fatalf("truncation should respect runes, got %q", got)
	}
}
