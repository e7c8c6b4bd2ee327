package cart

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-ordering-api/models"
)

// PickupIdentifier is the fixed identifier for pickup carts; pickup
// has no table or area to key on.
const PickupIdentifier = "default"

// Signals are the ambient inputs the resolver works from: an explicit
// order-type hint plus whatever table or area identifier the request
// carried. Any of the three may be empty.
type Signals struct {
	TypeHint string
	Table    string
	Area     string
}

// IdentifierStore remembers the last identifier resolved for each
// order type, so navigation that drops query parameters does not lose
// the active table or area.
type IdentifierStore interface {
	LastIdentifier(orderType models.OrderType) (string, bool)
	Remember(orderType models.OrderType, identifier string)
}

// Resolve deduces the canonical order context from the signal set.
// Priority: explicit type hint, then a present table (dine-in), then a
// present area (delivery), then pickup as the fallback. When the
// winning type has no identifier in the signals, the last-known one
// for that type is reused.
func Resolve(sig Signals, last IdentifierStore) models.OrderContext {
	var orderType models.OrderType
	switch sig.TypeHint {
	case string(models.OrderTypeDelivery):
		orderType = models.OrderTypeDelivery
	case string(models.OrderTypePickup):
		orderType = models.OrderTypePickup
	case string(models.OrderTypeDineIn):
		orderType = models.OrderTypeDineIn
	default:
		switch {
		case sig.Table != "":
			orderType = models.OrderTypeDineIn
		case sig.Area != "":
			orderType = models.OrderTypeDelivery
		default:
			orderType = models.OrderTypePickup
		}
	}

	var identifier string
	switch orderType {
	case models.OrderTypeDineIn:
		identifier = sig.Table
	case models.OrderTypeDelivery:
		identifier = sig.Area
	case models.OrderTypePickup:
		identifier = PickupIdentifier
	}

	if identifier == "" && last != nil {
		if known, ok := last.LastIdentifier(orderType); ok {
			identifier = known
		}
	}
	if identifier != "" && last != nil {
		last.Remember(orderType, identifier)
	}

	return models.OrderContext{OrderType: orderType, Identifier: identifier}
}

// MemoryIdentifierStore is the in-process IdentifierStore.
type MemoryIdentifierStore struct {
	mu   sync.Mutex
	last map[models.OrderType]string
}

func NewMemoryIdentifierStore() *MemoryIdentifierStore {
	return &MemoryIdentifierStore{last: make(map[models.OrderType]string)}
}

func (m *MemoryIdentifierStore) LastIdentifier(orderType models.OrderType) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.last[orderType]
	return v, ok
}

func (m *MemoryIdentifierStore) Remember(orderType models.OrderType, identifier string) {
	m.mu.Lock()
	m.last[orderType] = identifier
	m.mu.Unlock()
}

// RedisIdentifierStore keeps last-known identifiers in redis so they
// survive process restarts alongside the persisted carts.
type RedisIdentifierStore struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisIdentifierStore(client *redis.Client) *RedisIdentifierStore {
	return &RedisIdentifierStore{client: client, timeout: 2 * time.Second}
}

func (r *RedisIdentifierStore) LastIdentifier(orderType models.OrderType) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	v, err := r.client.Get(ctx, identifierKey(orderType)).Result()
	if err != nil {
		return "", false
	}
	return v, v != ""
}

func (r *RedisIdentifierStore) Remember(orderType models.OrderType, identifier string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_ = r.client.Set(ctx, identifierKey(orderType), identifier, 0).Err()
}

func identifierKey(orderType models.OrderType) string {
	return "last-identifier-" + string(orderType)
}
