package statemachine

import (
	"strings"
	"testing"

	"restaurant-ordering-api/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name      string
		orderType models.OrderType
		from      models.OrderStatus
		to        models.OrderStatus
		allowed   bool
	}{
		{"received to preparing", models.OrderTypeDineIn, models.StatusReceived, models.StatusPreparing, true},
		{"preparing to ready", models.OrderTypePickup, models.StatusPreparing, models.StatusReady, true},
		{"ready to out for delivery", models.OrderTypeDelivery, models.StatusReady, models.StatusOutForDelivery, true},
		{"out for delivery back to ready", models.OrderTypeDelivery, models.StatusOutForDelivery, models.StatusReady, true},
		{"any to cancelled", models.OrderTypeDineIn, models.StatusReady, models.StatusCancelled, true},
		{"completed is terminal", models.OrderTypeDineIn, models.StatusCompleted, models.StatusPreparing, false},
		{"cancelled is terminal", models.OrderTypeDelivery, models.StatusCancelled, models.StatusReceived, false},
		{"no backwards to received", models.OrderTypeDineIn, models.StatusPreparing, models.StatusReceived, false},
		{"dinein never out for delivery", models.OrderTypeDineIn, models.StatusReady, models.StatusOutForDelivery, false},
		{"pickup never out for delivery", models.OrderTypePickup, models.StatusReceived, models.StatusOutForDelivery, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.orderType, tc.from, tc.to)
			if tc.allowed && err != nil {
				t.Fatalf("expected transition allowed, got %v", err)
			}
			if !tc.allowed && err == nil {
				t.Fatalf("expected transition %s → %s rejected", tc.from, tc.to)
			}
		})
	}
}

func TestValidTransitionsFromOmitsDeliveryStateForDineIn(t *testing.T) {
	nexts := ValidTransitionsFrom(models.OrderTypeDineIn, models.StatusReceived)
	for _, s := range nexts {
		if s == models.StatusOutForDelivery {
			t.Fatalf("dine-in must not offer Out for delivery")
		}
	}
	if len(nexts) != 4 {
		t.Fatalf("expected 4 next states for dine-in Received, got %v", nexts)
	}

	delivery := ValidTransitionsFrom(models.OrderTypeDelivery, models.StatusReceived)
	if len(delivery) != 5 {
		t.Fatalf("expected 5 next states for delivery Received, got %v", delivery)
	}
}

func TestRejectionNamesAttemptedTransition(t *testing.T) {
	err := CanTransition(models.OrderTypeDineIn, models.StatusCompleted, models.StatusPreparing)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"Completed", "Preparing", "terminal"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to mention %q, got %q", want, msg)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(models.StatusCompleted) || !IsTerminal(models.StatusCancelled) {
		t.Fatalf("Completed and Cancelled are terminal")
	}
	if IsTerminal(models.StatusReady) {
		t.Fatalf("Ready is not terminal")
	}
}
