package stockroom

import (
	"errors"
	"testing"

	"github.com/etnz/stockroom/date"
)

func TestBatches_merge(t *testing.T) {
	var b batches
	may10 := date.MustParse("2025-05-10")
	may03 := date.MustParse("2025-05-03")

	b.merge(Q(50), may10)
	if len(b) != 1 {
		t.Fatalf("after first merge, %d batches, want 1", len(b))
	}

	// A matching date merges quantities instead of creating a duplicate.
	b.merge(Q(20), may10)
	if len(b) != 1 {
		t.Fatalf("after merging the same date, %d batches, want 1", len(b))
	}
	if got := b.total().Units(); got != 70 {
		t.Errorf("total = %d, want 70", got)
	}

	// A new date creates exactly one new batch, sorted earliest first.
	b.merge(Q(5), may03)
	if len(b) != 2 {
		t.Fatalf("after merging a new date, %d batches, want 2", len(b))
	}
	if b[0].Expires != may03 {
		t.Errorf("earliest batch expires %s, want %s", b[0].Expires, may03)
	}
	if got := b.total().Units(); got != 75 {
		t.Errorf("total = %d, want 75", got)
	}
}

func TestBatches_consume(t *testing.T) {
	may03 := date.MustParse("2025-05-03")
	may10 := date.MustParse("2025-05-10")
	may20 := date.MustParse("2025-05-20")

	newBatches := func() batches {
		var b batches
		b.merge(Q(10), may10)
		b.merge(Q(5), may03)
		b.merge(Q(20), may20)
		return b
	}

	t.Run("earliest batch first", func(t *testing.T) {
		b := newBatches()
		drained, err := b.consume(Q(8))
		if err != nil {
			t.Fatalf("consume(8) error = %v", err)
		}
		// 5 from may03 (drained to zero, left in place), 3 from may10.
		if len(b) != 3 {
			t.Fatalf("zero-quantity batches must stay, got %d batches", len(b))
		}
		if got := b[0].Quantity.Units(); got != 0 {
			t.Errorf("earliest batch quantity = %d, want 0", got)
		}
		if got := b[1].Quantity.Units(); got != 7 {
			t.Errorf("second batch quantity = %d, want 7", got)
		}
		if got := b.total().Units(); got != 27 {
			t.Errorf("total = %d, want 27", got)
		}
		if len(drained) != 2 {
			t.Fatalf("%d drained batches recorded, want 2", len(drained))
		}
		if drained[0].Expires != may03 || drained[0].Quantity.Units() != 5 {
			t.Errorf("first drained batch = %d@%s, want 5@%s", drained[0].Quantity.Units(), drained[0].Expires, may03)
		}
	})

	t.Run("all or nothing", func(t *testing.T) {
		b := newBatches()
		_, err := b.consume(Q(36))
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("consume(36) error = %v, want ErrInsufficientStock", err)
		}
		if got := b.total().Units(); got != 35 {
			t.Errorf("total after failed consume = %d, want 35 unchanged", got)
		}
	})

	t.Run("skips drained batches", func(t *testing.T) {
		b := newBatches()
		if _, err := b.consume(Q(5)); err != nil {
			t.Fatal(err)
		}
		if _, err := b.consume(Q(10)); err != nil {
			t.Fatal(err)
		}
		// may03 and may10 are empty now, may20 serves the rest.
		if got := b[2].Quantity.Units(); got != 20 {
			t.Errorf("latest batch quantity = %d, want 20", got)
		}
		if _, err := b.consume(Q(1)); err != nil {
			t.Fatal(err)
		}
		if got := b[2].Quantity.Units(); got != 19 {
			t.Errorf("latest batch quantity = %d, want 19", got)
		}
	})
}

// The displayed quantity of a perishable item always equals the sum of its
// batches, after every mutation.
func TestPerishable_QuantityInvariant(t *testing.T) {
	p, err := NewPerishable("Apple", "Vegetables & Fruits")
	if err != nil {
		t.Fatal(err)
	}
	check := func(want int) {
		t.Helper()
		var sum int
		for _, b := range p.Batches() {
			sum += b.Quantity.Units()
		}
		if got := p.Quantity().Units(); got != sum || got != want {
			t.Errorf("quantity = %d, batch sum = %d, want both %d", got, sum, want)
		}
	}

	check(0) // empty batch set is valid
	p.batches.merge(Q(50), date.MustParse("2025-05-10"))
	check(50)
	p.batches.merge(Q(25), date.MustParse("2025-05-17"))
	check(75)
	if _, err := p.batches.consume(Q(60)); err != nil {
		t.Fatal(err)
	}
	check(15)
}
