package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-ordering-api/models"
)

// Default polling cadences: staff dashboards refresh fast, customer
// order tracking can afford a slower loop.
const (
	DashboardInterval = 5 * time.Second
	TrackingInterval  = 10 * time.Second
)

// FetchOrders loads the current order set from the server.
type FetchOrders func(ctx context.Context) ([]models.Order, error)

// Events are the poller's callbacks. Any of them may be nil.
// OnNewOrder fires once per order number that was absent from the
// previous snapshot (the surrounding UI uses it for audible alerts).
type Events struct {
	OnSnapshot func(orders []models.Order)
	OnNewOrder func(order models.Order)
	OnError    func(err error)
}

// Poller keeps a remote client's view of the order set in sync on a
// fixed interval. Fetch failures retain the last-known snapshot; Stop
// cancels the loop and guarantees no callbacks or state writes after
// it returns.
type Poller struct {
	interval time.Duration
	fetch    FetchOrders
	events   Events

	mu       sync.Mutex
	snapshot []models.Order
	known    map[string]bool
	seeded   bool
	lastErr  error
	cancel   context.CancelFunc
	done     chan struct{}
}

func New(interval time.Duration, fetch FetchOrders, events Events) *Poller {
	if interval <= 0 {
		interval = DashboardInterval
	}
	return &Poller{
		interval: interval,
		fetch:    fetch,
		events:   events,
		known:    make(map[string]bool),
	}
}

// Start begins polling immediately and then on every interval tick
// until Stop is called or ctx is cancelled.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return errors.New("poller already started")
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		p.poll(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.poll(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// Stop cancels the polling loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Snapshot returns the last successfully fetched order set.
func (p *Poller) Snapshot() []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Order{}, p.snapshot...)
}

// LastError reports the most recent fetch failure, cleared by the
// next successful poll. A non-nil value means the snapshot is stale
// and the caller should offer a retry.
func (p *Poller) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Poll runs one fetch cycle outside the timer, for manual retries.
func (p *Poller) Poll(ctx context.Context) {
	p.poll(ctx)
}

func (p *Poller) poll(ctx context.Context) {
	orders, err := p.fetch(ctx)
	if ctx.Err() != nil {
		// Cancelled mid-fetch; the loop is shutting down.
		return
	}

	if err != nil {
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		if p.events.OnError != nil {
			p.events.OnError(err)
		}
		return
	}

	p.mu.Lock()
	var fresh []models.Order
	known := make(map[string]bool, len(orders))
	for _, order := range orders {
		known[order.OrderNumber] = true
		if !p.known[order.OrderNumber] {
			fresh = append(fresh, order)
		}
	}
	p.known = known
	p.snapshot = orders
	p.lastErr = nil
	seeded := p.seeded
	p.seeded = true
	p.mu.Unlock()

	// The very first snapshot seeds the known set without firing
	// new-order events; everything would otherwise ring the bell.
	if seeded && p.events.OnNewOrder != nil {
		for _, order := range fresh {
			p.events.OnNewOrder(order)
		}
	}
	if p.events.OnSnapshot != nil {
		p.events.OnSnapshot(orders)
	}
}
