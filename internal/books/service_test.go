package books

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/gbazo/bibproc/internal/biblio"
	"github.com/gbazo/bibproc/internal/cache"
)

func TestService_LookupCachesResult(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(volumePayload))
	})

	svc := NewService(client, cache.New(nil))
	ctx := context.Background()

	meta, err := svc.Lookup(ctx, "Clean Code", "Robert Martin")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if meta == nil || meta.ISBN != "9780132350884" {
		t.Fatalf("Lookup() = %+v, want populated metadata", meta)
	}
	if meta.CitationType != biblio.TypeBook {
		t.Errorf("CitationType = %v, want classified as Livro", meta.CitationType)
	}

	// Same pair again: served from cache, no second request.
	if _, err := svc.Lookup(ctx, "Clean Code", "Robert Martin"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("network calls = %d, want 1", got)
	}
}

func TestService_LookupCachesFailure(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := cache.New(nil)
	svc := NewService(client, c)
	ctx := context.Background()

	meta, err := svc.Lookup(ctx, "Broken Book", "")
	if err != nil {
		t.Fatalf("Lookup() error = %v, want provider failures recovered", err)
	}
	if meta != nil {
		t.Fatalf("Lookup() = %+v, want nil on failure", meta)
	}

	// The failure is a permanent negative entry: no retry.
	if _, err := svc.Lookup(ctx, "Broken Book", ""); err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("network calls = %d, want 1 (negative cached)", got)
	}
	if c.Negatives() != 1 {
		t.Errorf("Negatives() = %d, want 1", c.Negatives())
	}
}

func TestService_LookupEmptyResultCached(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"totalItems":0}`))
	})

	svc := NewService(client, cache.New(nil))
	ctx := context.Background()

	if meta, err := svc.Lookup(ctx, "Nonexistent", ""); err != nil || meta != nil {
		t.Fatalf("Lookup() = %v, %v; want nil, nil", meta, err)
	}
	svc.Lookup(ctx, "Nonexistent", "")
	if got := calls.Load(); got != 1 {
		t.Errorf("network calls = %d, want 1", got)
	}
}

func TestService_CancelledContextNotCached(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(volumePayload))
	})

	c := cache.New(nil)
	svc := NewService(client, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Lookup(ctx, "Clean Code", ""); err == nil {
		t.Fatal("Lookup() error = nil, want context error")
	}
	if c.Len() != 0 {
		t.Errorf("cache size = %d after cancellation, want 0 (no poison entry)", c.Len())
	}
}

func TestService_BypassRefreshesNegative(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(volumePayload))
	})

	store := cache.New(nil, cache.WithBypass(true))
	svc := NewService(client, store)
	ctx := context.Background()

	// Outage run poisons nothing permanent: bypass retries it.
	if meta, _ := svc.Lookup(ctx, "Clean Code", ""); meta != nil {
		t.Fatal("expected failed lookup during outage")
	}

	fail.Store(false)
	meta, err := svc.Lookup(ctx, "Clean Code", "")
	if err != nil {
		t.Fatal(err)
	}
	if meta == nil {
		t.Fatal("bypass did not refresh the negative entry")
	}
}
