package stockroom

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/etnz/stockroom/date"
)

// The error taxonomy of the ledger. All of these are recoverable at the call
// site: the caller reports the condition and continues.
var (
	// ErrItemNotFound is returned on a lookup miss during update or order fulfillment.
	ErrItemNotFound = errors.New("item not found")
	// ErrInsufficientStock is returned when a removal exceeds the quantity on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrMalformedOrder is returned when order text cannot be parsed.
	ErrMalformedOrder = errors.New("malformed order")
	// ErrInvalidAmount is returned for a negative or otherwise impossible adjustment.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDuplicateItem is returned when adding an item whose normalized name is taken.
	ErrDuplicateItem = errors.New("duplicate item")
)

// Thresholds carries the stock levels that flag an item on reports. They are
// injected at ledger construction so reports stay testable against arbitrary
// limits.
type Thresholds struct {
	Low  int // an item with quantity strictly below Low is low on stock
	Over int // an item with quantity strictly above Over is overstocked
}

// DefaultThresholds are the store's standard report limits.
var DefaultThresholds = Thresholds{Low: 5, Over: 100}

// Ledger is the owning aggregate of all stock items, the pending order queue,
// the mutation journal and the manager contribution accounting. It is the
// sole mutator of item state.
//
// A Ledger is exclusively owned by a single caller; none of its operations
// are safe for concurrent use.
type Ledger struct {
	items      []Item // insertion order, for display
	index      map[string]Item
	contrib    map[string]Quantity
	journal    journal
	orders     []string
	thresholds Thresholds
}

// NewLedger creates an empty ledger with the given report thresholds.
func NewLedger(t Thresholds) *Ledger {
	return &Ledger{
		index:      make(map[string]Item),
		contrib:    make(map[string]Quantity),
		thresholds: t,
	}
}

// Thresholds returns the report limits this ledger was built with.
func (l *Ledger) Thresholds() Thresholds { return l.thresholds }

// Len returns the number of items tracked by the ledger.
func (l *Ledger) Len() int { return len(l.items) }

// Get returns the item with this name (case-insensitive), or false.
func (l *Ledger) Get(name string) (Item, bool) {
	it, ok := l.index[normalize(name)]
	return it, ok
}

// All returns an iterator over all items in insertion order.
func (l *Ledger) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range l.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Add inserts a new item keyed by its normalized name. Adding a name that is
// already taken is an explicit error, never a silent overwrite.
func (l *Ledger) Add(item Item) error {
	key := normalize(item.Name())
	if key == "" {
		return fmt.Errorf("item name is missing: %w", ErrInvalidAmount)
	}
	if _, ok := l.index[key]; ok {
		return fmt.Errorf("item %q already exists: %w", item.Name(), ErrDuplicateItem)
	}
	l.items = append(l.items, item)
	l.index[key] = item
	return nil
}

// Restock merges a (quantity, expiration) batch into the perishable item with
// this name, creating the item if it does not exist yet. Restocking an
// existing batch date merges quantities instead of duplicating the batch.
//
// The name of an existing non-perishable item cannot be restocked this way: a
// plain item never becomes perishable.
func (l *Ledger) Restock(name string, qty int, expires date.Date, section string) error {
	if qty < 0 {
		return fmt.Errorf("cannot restock %d units of %q: %w", qty, name, ErrInvalidAmount)
	}
	amount := Q(qty)

	it, ok := l.index[normalize(name)]
	if !ok {
		p, err := NewPerishable(name, section)
		if err != nil {
			return err
		}
		p.batches.merge(amount, expires)
		if err := l.Add(p); err != nil {
			return err
		}
		l.journal.push(Entry{
			Command:     CmdRestock,
			Date:        date.Today(),
			Item:        p.Name(),
			Delta:       amount,
			PrevBatches: []Batch{{Quantity: Q(0), Expires: expires}},
		})
		return nil
	}

	p, isPerishable := it.(*Perishable)
	if !isPerishable {
		return fmt.Errorf("item %q is not perishable: %w", name, ErrDuplicateItem)
	}
	prev := Q(0)
	if i := p.batches.find(expires); i >= 0 {
		prev = p.batches[i].Quantity
	}
	p.batches.merge(amount, expires)
	l.journal.push(Entry{
		Command:     CmdRestock,
		Date:        date.Today(),
		Item:        p.Name(),
		Delta:       amount,
		PrevBatches: []Batch{{Quantity: prev, Expires: expires}},
	})
	return nil
}

// UpdateStock adds delta (possibly negative) to the flat quantity of a
// non-perishable item. Subtracting below zero fails with
// ErrInsufficientStock and changes nothing.
//
// Perishable stock is adjusted solely by batch operations (Restock, order
// fulfillment); calling UpdateStock on a perishable item is an error.
func (l *Ledger) UpdateStock(name string, delta int) error {
	it, ok := l.index[normalize(name)]
	if !ok {
		return fmt.Errorf("cannot update %q: %w", name, ErrItemNotFound)
	}
	p, isPlain := it.(*Plain)
	if !isPlain {
		return fmt.Errorf("%q is perishable, adjust it by restocking batches: %w", name, ErrInvalidAmount)
	}

	prev := p.Quantity()
	if delta >= 0 {
		if err := p.AddStock(Q(delta)); err != nil {
			return err
		}
	} else {
		if err := p.RemoveStock(Q(-delta)); err != nil {
			return err
		}
	}
	l.journal.push(Entry{
		Command:      CmdUpdate,
		Date:         date.Today(),
		Item:         p.Name(),
		Delta:        Q(delta),
		PrevQuantity: &prev,
	})
	return nil
}

// AdjustStock applies an operator-based adjustment, "+" or "-", with a
// non-negative value. It shares UpdateStock's error surface.
func (l *Ledger) AdjustStock(name, op string, value int) error {
	if value < 0 {
		return fmt.Errorf("adjustment value %d: %w", value, ErrInvalidAmount)
	}
	switch op {
	case "+":
		return l.UpdateStock(name, value)
	case "-":
		return l.UpdateStock(name, -value)
	default:
		return fmt.Errorf("unknown operator %q (want + or -): %w", op, ErrInvalidAmount)
	}
}

// RecordContribution increments a manager's cumulative added quantity. It is
// pure accounting: validating the manager identity is the login layer's job.
func (l *Ledger) RecordContribution(manager string, qty int) {
	l.contrib[manager] = l.contrib[manager].Add(Q(qty))
}

// Contribution returns a manager's cumulative added quantity.
func (l *Ledger) Contribution(manager string) Quantity { return l.contrib[manager] }

// Contributions returns a copy of the per-manager contribution totals.
func (l *Ledger) Contributions() map[string]Quantity { return maps.Clone(l.contrib) }

// Undo pops the most recent journal entry, applies its inverse to the ledger,
// and returns the entry's description.
func (l *Ledger) Undo() (string, error) {
	e, ok := l.journal.pop()
	if !ok {
		return "", errors.New("nothing to undo")
	}
	it, ok := l.index[normalize(e.Item)]
	if !ok {
		return "", fmt.Errorf("cannot undo %s: %w", e.Describe(), ErrItemNotFound)
	}
	switch v := it.(type) {
	case *Plain:
		if e.PrevQuantity == nil {
			return "", fmt.Errorf("cannot undo %s: no previous quantity recorded", e.Describe())
		}
		v.setQuantity(*e.PrevQuantity)
	case *Perishable:
		for _, b := range e.PrevBatches {
			v.batches.set(b.Quantity, b.Expires)
		}
	}
	return e.Describe(), nil
}

// Journal returns a copy of the mutation journal, oldest entry first.
func (l *Ledger) Journal() []Entry {
	out := make([]Entry, len(l.journal))
	copy(out, l.journal)
	return out
}

// restoreJournal replaces the journal with entries loaded from disk.
func (l *Ledger) restoreJournal(entries []Entry) {
	l.journal = nil
	for _, e := range entries {
		l.journal.push(e)
	}
}

// restoreContribution replaces a manager's total with a value loaded from disk.
func (l *Ledger) restoreContribution(manager string, total Quantity) {
	l.contrib[manager] = total
}
