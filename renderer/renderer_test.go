package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/date"
)

func testLedger(t *testing.T) *stockroom.Ledger {
	t.Helper()
	l := stockroom.NewLedger(stockroom.DefaultThresholds)
	rice, err := stockroom.NewPlain("Rice", "Pantry", 40)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Add(rice); err != nil {
		t.Fatal(err)
	}
	if err := l.Restock("Milk", 3, date.MustParse("2025-05-10"), "Dairy"); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestItems(t *testing.T) {
	l := testLedger(t)
	var items []stockroom.Item
	for it := range l.All() {
		items = append(items, it)
	}
	got := Items("Inventory", items)

	for _, want := range []string{"# Inventory", "Rice", "Pantry", "Milk", "perishable", "plain"} {
		if !strings.Contains(got, want) {
			t.Errorf("Items() misses %q in:\n%s", want, got)
		}
	}
}

func TestLowStock_empty(t *testing.T) {
	got := LowStock(nil, 5)
	if !strings.Contains(got, "No item is low on stock") {
		t.Errorf("empty report misses the placeholder:\n%s", got)
	}
}

func TestExpiring(t *testing.T) {
	l := testLedger(t)
	on := date.MustParse("2025-05-08")
	got := Expiring(on, l.Expiring(on))

	for _, want := range []string{"Milk", "Dairy", "2025-05-10"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expiring() misses %q in:\n%s", want, got)
		}
	}
}

func TestOrderResults(t *testing.T) {
	l := testLedger(t)
	l.Enqueue("10 rice")
	l.Enqueue("99 milk")
	got := OrderResults(l.ProcessOrders())

	if !strings.Contains(got, "fulfilled") {
		t.Errorf("OrderResults() misses the fulfilled row:\n%s", got)
	}
	if !strings.Contains(got, "insufficient stock") {
		t.Errorf("OrderResults() misses the failed row:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	l := testLedger(t)
	l.RecordContribution("Ada", 43)
	got := Summary(l.Summarize("Ada", date.MustParse("2025-05-01")))

	for _, want := range []string{"Store Summary on 2025-05-01", "Ada", "43"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() misses %q in:\n%s", want, got)
		}
	}
}
