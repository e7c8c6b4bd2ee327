package variation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-ordering-api/models"
)

func TestFetchSessionAppliesCurrentResult(t *testing.T) {
	fetch := func(ctx context.Context, category string) ([]models.VariationOption, error) {
		return []models.VariationOption{{ID: "1", Name: category, Available: true}}, nil
	}

	session := NewFetchSession(fetch)
	applied := make(chan []models.VariationOption, 1)
	session.Load(context.Background(), "Soup", func(options []models.VariationOption) {
		applied <- options
	}, nil)

	select {
	case options := <-applied:
		if len(options) != 1 || options[0].Name != "Soup" {
			t.Fatalf("unexpected options %v", options)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected apply to be called")
	}
}

func TestFetchSessionDiscardsAfterClose(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, category string) ([]models.VariationOption, error) {
		<-release
		return []models.VariationOption{{ID: "1", Name: "stale"}}, nil
	}

	session := NewFetchSession(fetch)
	var applied atomic.Bool
	session.Load(context.Background(), "Soup", func([]models.VariationOption) {
		applied.Store(true)
	}, nil)

	// Modal closed before the fetch resolves.
	session.Close()
	close(release)

	time.Sleep(50 * time.Millisecond)
	if applied.Load() {
		t.Fatalf("stale fetch result must not be applied after close")
	}
}

func TestFetchSessionDiscardsAcrossReset(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context, category string) ([]models.VariationOption, error) {
		if calls.Add(1) == 1 {
			<-release
			return []models.VariationOption{{ID: "old", Name: "old"}}, nil
		}
		return []models.VariationOption{{ID: "new", Name: "new"}}, nil
	}

	session := NewFetchSession(fetch)
	results := make(chan string, 2)
	session.Load(context.Background(), "Soup", func(options []models.VariationOption) {
		results <- options[0].ID
	}, nil)

	// Selector reopened: old in-flight fetch belongs to a dead session.
	session.Close()
	session.Reset()
	session.Load(context.Background(), "Soup", func(options []models.VariationOption) {
		results <- options[0].ID
	}, nil)
	close(release)

	select {
	case id := <-results:
		if id != "new" {
			t.Fatalf("expected only the new session's result, got %s", id)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected new session's result")
	}

	select {
	case id := <-results:
		t.Fatalf("unexpected second apply with id %s", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFetchSessionReportsErrors(t *testing.T) {
	wantErr := errors.New("catalog unavailable")
	fetch := func(ctx context.Context, category string) ([]models.VariationOption, error) {
		return nil, wantErr
	}

	session := NewFetchSession(fetch)
	errs := make(chan error, 1)
	session.Load(context.Background(), "Soup", func([]models.VariationOption) {
		t.Errorf("apply must not run on error")
	}, func(err error) {
		errs <- err
	})

	select {
	case err := <-errs:
		if !errors.Is(err, wantErr) {
			t.Fatalf("unexpected error %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected error callback")
	}
}
