package stockroom

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stockroom/date"
)

// Saving then loading a ledger of non-perishable items reproduces identical
// (name, quantity, section, perishable) tuples.
func TestInventoryRoundTrip_plain(t *testing.T) {
	l := NewLedger(DefaultThresholds)
	want := []struct {
		name    string
		qty     int
		section string
	}{
		{"Rice", 40, "Pantry"},
		{"Salt", 0, "Pantry"},
		{"Shampoo", 12, "Hygiene"},
	}
	for _, item := range want {
		if err := l.Add(mustPlain(t, item.name, item.section, item.qty)); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, l); err != nil {
		t.Fatalf("EncodeInventory error = %v", err)
	}
	reloaded, err := DecodeInventory(&buf, DefaultThresholds)
	if err != nil {
		t.Fatalf("DecodeInventory error = %v", err)
	}

	if reloaded.Len() != len(want) {
		t.Fatalf("reloaded %d items, want %d", reloaded.Len(), len(want))
	}
	for _, item := range want {
		it, ok := reloaded.Get(item.name)
		if !ok {
			t.Errorf("item %q missing after round trip", item.name)
			continue
		}
		if it.Name() != item.name || it.Quantity().Units() != item.qty ||
			it.Section() != item.section || it.IsPerishable() {
			t.Errorf("item %q = (%s, %s, %v), want (%d, %s, false)",
				item.name, it.Quantity(), it.Section(), it.IsPerishable(), item.qty, item.section)
		}
	}
}

// Round-tripping a perishable item with several batches does NOT preserve the
// total quantity: only the earliest-expiring batch survives. The loss is the
// documented behavior of the legacy format, so this test asserts it.
func TestInventoryRoundTrip_perishableIsLossy(t *testing.T) {
	l := NewLedger(DefaultThresholds)
	may10 := date.MustParse("2025-05-10")
	may20 := date.MustParse("2025-05-20")
	if err := l.Restock("Apple", 50, may10, "Vegetables & Fruits"); err != nil {
		t.Fatal(err)
	}
	if err := l.Restock("Apple", 30, may20, ""); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, l); err != nil {
		t.Fatalf("EncodeInventory error = %v", err)
	}
	line := strings.TrimSpace(buf.String())
	if want := "Apple,50,2025-05-10,Vegetables & Fruits,true"; line != want {
		t.Errorf("encoded line = %q, want %q", line, want)
	}

	reloaded, err := DecodeInventory(strings.NewReader(buf.String()), DefaultThresholds)
	if err != nil {
		t.Fatalf("DecodeInventory error = %v", err)
	}
	it, ok := reloaded.Get("Apple")
	if !ok {
		t.Fatal("Apple missing after round trip")
	}
	if got := it.Quantity().Units(); got != 50 {
		t.Errorf("reloaded quantity = %d, want the lossy 50 (original total was 80)", got)
	}
	if batches := it.(*Perishable).Batches(); len(batches) != 1 {
		t.Errorf("reloaded with %d batches, want 1 (later batches dropped)", len(batches))
	}
}

func TestDecodeInventory_skipsMalformedLines(t *testing.T) {
	in := strings.Join([]string{
		"Rice,40,N/A,Pantry,false",
		"too,few,fields",                        // wrong field count
		"Ghost,notanumber,N/A,Pantry,false",     // unparseable quantity
		"Spirit,10,N/A,Pantry,perhaps",          // unparseable flag
		"Milk,12,2025-05-10,Dairy,true",         //
		"Milk,24,2025-05-20,Dairy,true",         // duplicate perishable merges
		"Empty,0,N/A,Dairy,true",                // perishable with no stock yet
		"a,b,c,d,e,f",                           // wrong field count again
	}, "\n")

	l, err := DecodeInventory(strings.NewReader(in), DefaultThresholds)
	if err != nil {
		t.Fatalf("DecodeInventory error = %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("decoded %d items, want 3", l.Len())
	}
	milk, _ := l.Get("Milk")
	if got := milk.Quantity().Units(); got != 36 {
		t.Errorf("Milk quantity = %d, want 36 (merged batches)", got)
	}
	empty, ok := l.Get("Empty")
	if !ok || empty.Quantity().Units() != 0 {
		t.Errorf("Empty = %v, want a perishable with zero stock", empty)
	}
}

func TestJournalRoundTrip(t *testing.T) {
	l := NewLedger(DefaultThresholds)
	if err := l.Add(mustPlain(t, "Rice", "Pantry", 40)); err != nil {
		t.Fatal(err)
	}
	if err := l.UpdateStock("Rice", -5); err != nil {
		t.Fatal(err)
	}
	if err := l.Restock("Apple", 50, date.MustParse("2025-05-10"), "Vegetables & Fruits"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, l); err != nil {
		t.Fatalf("EncodeJournal error = %v", err)
	}
	entries, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal error = %v", err)
	}
	want := l.Journal()
	if len(entries) != len(want) {
		t.Fatalf("decoded %d entries, want %d", len(entries), len(want))
	}
	for i := range entries {
		if entries[i].Describe() != want[i].Describe() {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Describe(), want[i].Describe())
		}
	}
}

func TestDecodeJournal_rejectsGarbage(t *testing.T) {
	if _, err := DecodeJournal(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodeJournal must fail on a non-JSON line")
	}
}

func TestStore_missingFilesMeanEmptyState(t *testing.T) {
	s := Store{Dir: filepath.Join(t.TempDir(), "nowhere"), Thresholds: DefaultThresholds}
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("loaded %d items from a missing store, want 0", l.Len())
	}
}

func TestStore_roundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir(), Thresholds: DefaultThresholds}

	l := NewLedger(DefaultThresholds)
	if err := l.Add(mustPlain(t, "Rice", "Pantry", 40)); err != nil {
		t.Fatal(err)
	}
	if err := l.UpdateStock("Rice", -5); err != nil {
		t.Fatal(err)
	}
	l.RecordContribution("Ada", 40)
	l.Enqueue("10 rice")

	if err := s.Save(l); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	it, ok := reloaded.Get("Rice")
	if !ok || it.Quantity().Units() != 35 {
		t.Errorf("Rice = %v, want 35 units", it)
	}
	if got := reloaded.Contribution("Ada").Units(); got != 40 {
		t.Errorf("Contribution(Ada) = %d, want 40", got)
	}
	if orders := reloaded.PendingOrders(); len(orders) != 1 || orders[0] != "10 rice" {
		t.Errorf("pending orders = %v, want [10 rice]", orders)
	}

	// The journal survives the round trip: the update is still undoable.
	if _, err := reloaded.Undo(); err != nil {
		t.Fatalf("Undo after reload error = %v", err)
	}
	it, _ = reloaded.Get("Rice")
	if got := it.Quantity().Units(); got != 40 {
		t.Errorf("Rice after undo = %d, want 40", got)
	}
}
