package collector

import (
	"testing"
	"time"
)

func TestDemoPayload(t *testing.T) {
	t.Parallel()

	clk := fixedClock{t: time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)}
	payload := DemoPayload(clk)

	if payload.Source != "demo" {
		t.Fatalf("expected source demo, got %q", payload.Source)
	}
	if payload.Query != "clearance" {
		t.Fatalf("expected query clearance, got %q", payload.Query)
	}
	if payload.GeneratedAt != "2026-08-31T09:30:00Z" {
		t.Fatalf("unexpected generated_at %q", payload.GeneratedAt)
	}
	if len(payload.Stores) != 2 {
		t.Fatalf("expected both registry stores, got %d", len(payload.Stores))
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected the two fixed demo items, got %d", len(payload.Items))
	}

	tv := payload.Items[0]
	if tv.SKU != "6000191234567" || tv.City != "Saint-Jérôme" {
		t.Fatalf("unexpected first demo item: %+v", tv)
	}
	if tv.Pct == nil || *tv.Pct != 33 {
		t.Fatalf("expected pct 33 on the first demo item, got %v", tv.Pct)
	}
	if payload.Items[1].Availability != "LOW_STOCK" {
		t.Fatalf("unexpected second demo item availability %q", payload.Items[1].Availability)
	}
}

func TestDemoItemsStable(t *testing.T) {
	t.Parallel()

	a := demoItems()
	b := demoItems()
	if len(a) != len(b) {
		t.Fatalf("demo items changed length between calls")
	}
	// Pointers are fresh per call so one payload cannot alias another.
	if a[0].Price == b[0].Price {
		t.Fatal("expected fresh price pointers per call")
	}
	if *a[0].Price != *b[0].Price {
		t.Fatalf("demo prices differ: %v vs %v", *a[0].Price, *b[0].Price)
	}
}
