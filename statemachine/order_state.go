package statemachine

import (
	"errors"

	"restaurant-ordering-api/models"
)

// Transition defines a valid status change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// "Out for delivery" edges only apply to delivery orders; dine-in and
// pickup orders skip that state entirely.
var validTransitions = []Transition{
	{From: models.StatusReceived, To: models.StatusPreparing},
	{From: models.StatusReceived, To: models.StatusReady},
	{From: models.StatusReceived, To: models.StatusOutForDelivery},
	{From: models.StatusReceived, To: models.StatusCompleted},
	{From: models.StatusReceived, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery},
	{From: models.StatusPreparing, To: models.StatusCompleted},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusOutForDelivery},
	{From: models.StatusReady, To: models.StatusCompleted},
	{From: models.StatusReady, To: models.StatusCancelled},
	// A driver can come back if the customer was unreachable
	{From: models.StatusOutForDelivery, To: models.StatusReady},
	{From: models.StatusOutForDelivery, To: models.StatusCompleted},
	{From: models.StatusOutForDelivery, To: models.StatusCancelled},
	// Terminal states self-loop only
	{From: models.StatusCompleted, To: models.StatusCompleted},
	{From: models.StatusCancelled, To: models.StatusCancelled},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// allowsStatus reports whether a status exists at all for an order type
func allowsStatus(orderType models.OrderType, status models.OrderStatus) bool {
	if status == models.StatusOutForDelivery {
		return orderType == models.OrderTypeDelivery
	}
	return true
}

// ValidTransitionsFrom returns all valid next states for an order type
func ValidTransitionsFrom(orderType models.OrderType, status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From != status || t.From == t.To || seen[t.To] {
			continue
		}
		if !allowsStatus(orderType, t.To) {
			continue
		}
		nexts = append(nexts, t.To)
		seen[t.To] = true
	}
	return nexts
}

// CanTransition checks whether an order of the given type may move
// from one status to another. The check runs before any database
// write or network call; a rejection names the attempted transition
// and the valid next states.
func CanTransition(orderType models.OrderType, from, to models.OrderStatus) error {
	if allowsStatus(orderType, from) && allowsStatus(orderType, to) && transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for " + string(orderType) + " orders. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(orderType, from),
	)
}

// IsTerminal reports whether no further progress is possible
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

func describeValidFrom(orderType models.OrderType, status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(orderType, status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
