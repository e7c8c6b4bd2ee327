package cart

import (
	"testing"

	"restaurant-ordering-api/models"
)

func dineInContext(table string) models.OrderContext {
	return models.OrderContext{OrderType: models.OrderTypeDineIn, Identifier: table}
}

func newTestStore(t *testing.T, storage Storage, ctx models.OrderContext) *Store {
	t.Helper()
	store, err := NewStore(storage, ctx)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestAddMergesByIdentity(t *testing.T) {
	store := newTestStore(t, NewMemoryStorage(), dineInContext("12"))

	large := models.CartItem{ID: "1", Title: "Latte", Price: 550, Variations: []string{"Large"}}
	small := models.CartItem{ID: "1", Title: "Latte", Price: 450, Variations: []string{"Small"}}

	store.Add(large)
	store.Add(large)
	store.Add(small)

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", items[0].Quantity)
	}
	if items[1].Quantity != 1 {
		t.Fatalf("expected second line quantity 1, got %d", items[1].Quantity)
	}
	if got := store.TotalAmount(); got != 2*550+450 {
		t.Fatalf("expected total %v, got %v", 2*550+450, got)
	}
}

func TestAddIgnoresIncomingQuantity(t *testing.T) {
	store := newTestStore(t, NewMemoryStorage(), dineInContext("12"))

	store.Add(models.CartItem{ID: "1", Title: "Burger", Price: 300, Quantity: 5})
	if items := store.Items(); items[0].Quantity != 1 {
		t.Fatalf("first insert always starts at quantity 1, got %d", items[0].Quantity)
	}
}

func TestVariationOrderDoesNotSplitLines(t *testing.T) {
	store := newTestStore(t, NewMemoryStorage(), dineInContext("12"))

	store.Add(models.CartItem{ID: "1", Title: "Platter", Price: 900, Variations: []string{"Beef", "Cheese"}})
	store.Add(models.CartItem{ID: "1", Title: "Platter", Price: 900, Variations: []string{"Cheese", "Beef"}})

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line regardless of variation order, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	store := newTestStore(t, NewMemoryStorage(), dineInContext("12"))
	store.Add(models.CartItem{ID: "1", Title: "Burger", Price: 300})

	cases := []struct {
		name     string
		quantity int
		want     int
	}{
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -3, 1},
		{"positive applies", 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store.UpdateQuantity("1", tc.quantity, nil)
			if got := store.Items()[0].Quantity; got != tc.want {
				t.Fatalf("expected quantity %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRemoveMatchesVariations(t *testing.T) {
	store := newTestStore(t, NewMemoryStorage(), dineInContext("12"))
	store.Add(models.CartItem{ID: "1", Title: "Latte", Price: 550, Variations: []string{"Large"}})
	store.Add(models.CartItem{ID: "1", Title: "Latte", Price: 450})

	// Nil variations only matches the variation-free line.
	store.Remove("1", nil)
	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 remaining line, got %d", len(items))
	}
	if len(items[0].Variations) == 0 {
		t.Fatalf("expected the variation line to survive")
	}

	store.Remove("1", []string{"Large"})
	if len(store.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestEmptyCartDeletesPersistedRecord(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := dineInContext("12")
	store := newTestStore(t, storage, ctx)

	store.Add(models.CartItem{ID: "1", Title: "Burger", Price: 300})
	if _, exists, _ := storage.Load(ctx.StorageKey()); !exists {
		t.Fatalf("expected record persisted while non-empty")
	}

	store.Clear()
	if _, exists, _ := storage.Load(ctx.StorageKey()); exists {
		t.Fatalf("expected record removed when cart becomes empty")
	}
}

func TestContextIsolation(t *testing.T) {
	storage := NewMemoryStorage()
	table := dineInContext("12")
	area := models.OrderContext{OrderType: models.OrderTypeDelivery, Identifier: "Area A"}

	store := newTestStore(t, storage, table)
	store.Add(models.CartItem{ID: "1", Title: "Burger", Price: 300})
	store.Add(models.CartItem{ID: "2", Title: "Fries", Price: 150})

	if err := store.SwitchContext(area); err != nil {
		t.Fatalf("SwitchContext: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("expected empty cart in new context, got %v", store.Items())
	}
	if store.TotalAmount() != 0 {
		t.Fatalf("expected zero total in new context")
	}

	if err := store.SwitchContext(table); err != nil {
		t.Fatalf("SwitchContext back: %v", err)
	}
	if len(store.Items()) != 2 {
		t.Fatalf("expected original items restored, got %d", len(store.Items()))
	}
	if store.TotalAmount() != 450 {
		t.Fatalf("expected total 450 restored, got %v", store.TotalAmount())
	}
}

func TestClearAffectsCurrentContextOnly(t *testing.T) {
	storage := NewMemoryStorage()
	table := dineInContext("12")
	other := dineInContext("7")

	first := newTestStore(t, storage, table)
	first.Add(models.CartItem{ID: "1", Title: "Burger", Price: 300})

	second := newTestStore(t, storage, other)
	second.Add(models.CartItem{ID: "2", Title: "Fries", Price: 150})
	second.Clear()

	reloaded := newTestStore(t, storage, table)
	if len(reloaded.Items()) != 1 {
		t.Fatalf("clearing one context must not touch another")
	}
}
