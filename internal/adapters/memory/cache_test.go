package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelleal24/inventory/internal/adapters/memory"
	"github.com/rafaelleal24/inventory/internal/core/domain"
)

type testCacheItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestCache_SetAndGet(t *testing.T) {
	cache := memory.NewCache[testCacheItem]("test-cache")
	ctx := context.Background()

	t.Run("set and get value", func(t *testing.T) {
		item := &testCacheItem{Name: "widget", Value: 42}
		if err := cache.Set(ctx, "item-1", item, time.Minute); err != nil {
			t.Fatalf("expected no error on set, got %v", err)
		}

		item.Value = 0
		got, err := cache.Get(ctx, "item-1")
		if err != nil {
			t.Fatalf("expected no error on get, got %v", err)
		}
		if got == nil || got.Name != "widget" || got.Value != 42 {
			t.Fatalf("expected stored copy, got %+v", got)
		}
	})

	t.Run("get returns nil for missing key", func(t *testing.T) {
		got, err := cache.Get(ctx, "nonexistent-key")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("ttl expires value", func(t *testing.T) {
		_ = cache.Set(ctx, "ttl-item", &testCacheItem{Name: "ephemeral"}, 50*time.Millisecond)
		time.Sleep(100 * time.Millisecond)

		got, err := cache.Get(ctx, "ttl-item")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil (expired), got %+v", got)
		}
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		_ = cache.Set(ctx, "forever", &testCacheItem{Name: "forever"}, 0)
		time.Sleep(10 * time.Millisecond)

		got, _ := cache.Get(ctx, "forever")
		if got == nil {
			t.Fatal("expected value without ttl to be kept")
		}
	})
}

func TestCache_Overwrite(t *testing.T) {
	cache := memory.NewCache[testCacheItem]("test-overwrite")
	ctx := context.Background()

	_ = cache.Set(ctx, "key", &testCacheItem{Name: "first"}, time.Minute)
	if err := cache.Set(ctx, "key", &testCacheItem{Name: "second"}, time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, _ := cache.Get(ctx, "key")
	if got == nil || got.Name != "second" {
		t.Fatalf("expected the last value, got %+v", got)
	}
}

func TestCache_PrefixesAreIsolated(t *testing.T) {
	ledger := memory.NewCache[testCacheItem]("ledger")
	other := memory.NewCache[testCacheItem]("other")
	ctx := context.Background()

	_ = ledger.Set(ctx, "key", &testCacheItem{Name: "ledger"}, time.Minute)

	if got, _ := other.Get(ctx, "key"); got != nil {
		t.Fatalf("expected caches not to share entries, got %+v", got)
	}
}

func TestCache_Report(t *testing.T) {
	cache := memory.NewCache[domain.Report]("report")
	ctx := context.Background()

	report := domain.NewReport(
		[]*domain.Product{domain.NewProduct("Widget", "d", domain.NewAmount(10), 5)},
		[]domain.SaleRecord{domain.NewSaleRecord("Widget", 3, domain.NewAmount(12))},
		nil,
	)
	if err := cache.Set(ctx, "v1", report, time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := cache.Get(ctx, "v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].Name != "Widget" {
		t.Fatalf("unexpected products %+v", got.Products)
	}
	if !got.TotalSales.Equal(domain.NewAmount(36)) || !got.TotalProfit.Equal(domain.NewAmount(36)) {
		t.Fatalf("unexpected totals %s / %s", got.TotalSales, got.TotalProfit)
	}
}
