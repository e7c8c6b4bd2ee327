package cart

import (
	"testing"

	"restaurant-ordering-api/models"
)

func TestResolvePriority(t *testing.T) {
	cases := []struct {
		name           string
		sig            Signals
		wantType       models.OrderType
		wantIdentifier string
	}{
		{
			name:           "explicit delivery hint wins over table",
			sig:            Signals{TypeHint: "delivery", Table: "12", Area: "Area A"},
			wantType:       models.OrderTypeDelivery,
			wantIdentifier: "Area A",
		},
		{
			name:           "explicit pickup hint",
			sig:            Signals{TypeHint: "pickup", Table: "12"},
			wantType:       models.OrderTypePickup,
			wantIdentifier: "default",
		},
		{
			name:           "explicit dinein hint",
			sig:            Signals{TypeHint: "dinein", Table: "4"},
			wantType:       models.OrderTypeDineIn,
			wantIdentifier: "4",
		},
		{
			name:           "table implies dinein",
			sig:            Signals{Table: "9"},
			wantType:       models.OrderTypeDineIn,
			wantIdentifier: "9",
		},
		{
			name:           "area implies delivery",
			sig:            Signals{Area: "North Side"},
			wantType:       models.OrderTypeDelivery,
			wantIdentifier: "North Side",
		},
		{
			name:           "no signals fall back to pickup",
			sig:            Signals{},
			wantType:       models.OrderTypePickup,
			wantIdentifier: "default",
		},
		{
			name:           "unknown hint ignored, table wins",
			sig:            Signals{TypeHint: "drive-thru", Table: "2"},
			wantType:       models.OrderTypeDineIn,
			wantIdentifier: "2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := Resolve(tc.sig, NewMemoryIdentifierStore())
			if ctx.OrderType != tc.wantType {
				t.Fatalf("expected type %s, got %s", tc.wantType, ctx.OrderType)
			}
			if ctx.Identifier != tc.wantIdentifier {
				t.Fatalf("expected identifier %q, got %q", tc.wantIdentifier, ctx.Identifier)
			}
		})
	}
}

func TestResolveRetainsLastKnownIdentifier(t *testing.T) {
	last := NewMemoryIdentifierStore()

	first := Resolve(Signals{Table: "12"}, last)
	if first.Identifier != "12" {
		t.Fatalf("expected identifier 12, got %q", first.Identifier)
	}

	// Navigation dropped the query parameter but kept the type hint.
	second := Resolve(Signals{TypeHint: "dinein"}, last)
	if second.Identifier != "12" {
		t.Fatalf("expected last-known table retained, got %q", second.Identifier)
	}

	// A delivery context never inherits the dine-in identifier.
	third := Resolve(Signals{TypeHint: "delivery"}, last)
	if third.Identifier != "" {
		t.Fatalf("expected no delivery identifier, got %q", third.Identifier)
	}
}

func TestStorageKeySanitization(t *testing.T) {
	cases := []struct {
		name string
		ctx  models.OrderContext
		want string
	}{
		{
			name: "table number",
			ctx:  models.OrderContext{OrderType: models.OrderTypeDineIn, Identifier: "12"},
			want: "cart-dinein-12",
		},
		{
			name: "area with spaces",
			ctx:  models.OrderContext{OrderType: models.OrderTypeDelivery, Identifier: "Area A"},
			want: "cart-delivery-Area_A",
		},
		{
			name: "pickup sentinel",
			ctx:  models.OrderContext{OrderType: models.OrderTypePickup, Identifier: "default"},
			want: "cart-pickup-default",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ctx.StorageKey(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
