package handlers

import (
	"strings"
	"testing"

	"restaurant-ordering-api/models"
)

func TestOrderContext(t *testing.T) {
	cases := []struct {
		name           string
		order          models.Order
		wantType       models.OrderType
		wantIdentifier string
	}{
		{
			name:           "dinein keyed by table",
			order:          models.Order{OrderType: models.OrderTypeDineIn, TableNumber: "12"},
			wantType:       models.OrderTypeDineIn,
			wantIdentifier: "12",
		},
		{
			name:           "delivery keyed by area",
			order:          models.Order{OrderType: models.OrderTypeDelivery, Area: "Area A"},
			wantType:       models.OrderTypeDelivery,
			wantIdentifier: "Area A",
		},
		{
			name:           "pickup uses the sentinel",
			order:          models.Order{OrderType: models.OrderTypePickup},
			wantType:       models.OrderTypePickup,
			wantIdentifier: "default",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := orderContext(tc.order)
			if ctx.OrderType != tc.wantType || ctx.Identifier != tc.wantIdentifier {
				t.Fatalf("expected %s/%s, got %s/%s", tc.wantType, tc.wantIdentifier, ctx.OrderType, ctx.Identifier)
			}
		})
	}
}

func TestNewOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := newOrderNumber()
		if !strings.HasPrefix(n, "ORD-") || len(n) != len("ORD-")+8 {
			t.Fatalf("unexpected order number format %q", n)
		}
		if n != strings.ToUpper(n) {
			t.Fatalf("order number should be upper case, got %q", n)
		}
		if seen[n] {
			t.Fatalf("duplicate order number %q", n)
		}
		seen[n] = true
	}
}
