package stockroom

import (
	"fmt"
	"strings"
)

// Item defines the common interface for one stock-keeping unit tracked by the
// ledger. The two concrete kinds are Plain (a single flat counter) and
// Perishable (expiration-dated batches); operations that care about the kind
// switch on the concrete type explicitly.
type Item interface {
	Name() string        // Name returns the item name as it was first recorded.
	Section() string     // Section returns the free-text store location (e.g. "Dairy").
	Quantity() Quantity  // Quantity returns the stock currently on hand.
	IsPerishable() bool  // IsPerishable reports whether stock is tracked as dated batches.
}

// normalize returns the canonical lookup key for an item name.
func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Plain is an item counted with a single flat quantity and no expiration.
type Plain struct {
	name    string
	section string
	qty     Quantity
}

// NewPlain creates a non-perishable item with an initial quantity.
func NewPlain(name, section string, qty int) (*Plain, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("item name is missing: %w", ErrInvalidAmount)
	}
	if qty < 0 {
		return nil, fmt.Errorf("initial quantity %d for %q: %w", qty, name, ErrInvalidAmount)
	}
	return &Plain{name: name, section: section, qty: Q(qty)}, nil
}

func (p *Plain) Name() string       { return p.name }
func (p *Plain) Section() string    { return p.section }
func (p *Plain) Quantity() Quantity { return p.qty }
func (p *Plain) IsPerishable() bool { return false }

// AddStock increases the flat quantity. The amount must not be negative.
func (p *Plain) AddStock(amount Quantity) error {
	if amount.IsNegative() {
		return fmt.Errorf("cannot add %s to %q: %w", amount, p.name, ErrInvalidAmount)
	}
	p.qty = p.qty.Add(amount)
	return nil
}

// RemoveStock decreases the flat quantity. Removing more than is on hand
// fails and leaves the quantity unchanged.
func (p *Plain) RemoveStock(amount Quantity) error {
	if amount.IsNegative() {
		return fmt.Errorf("cannot remove %s from %q: %w", amount, p.name, ErrInvalidAmount)
	}
	if amount.GreaterThan(p.qty) {
		return fmt.Errorf("cannot remove %s from %q (only %s on hand): %w", amount, p.name, p.qty, ErrInsufficientStock)
	}
	p.qty = p.qty.Sub(amount)
	return nil
}

// setQuantity overwrites the flat quantity. Only the journal inversion uses it.
func (p *Plain) setQuantity(q Quantity) { p.qty = q }

// Perishable is an item whose stock is expiration-dated and tracked as
// batches rather than a single counter. Its quantity is always derived from
// the batches, never stored independently.
type Perishable struct {
	name    string
	section string
	batches batches
}

// NewPerishable creates a perishable item with no stock yet.
func NewPerishable(name, section string) (*Perishable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("item name is missing: %w", ErrInvalidAmount)
	}
	return &Perishable{name: name, section: section}, nil
}

func (p *Perishable) Name() string       { return p.name }
func (p *Perishable) Section() string    { return p.section }
func (p *Perishable) IsPerishable() bool { return true }

// Quantity returns the sum of all batch quantities.
func (p *Perishable) Quantity() Quantity { return p.batches.total() }

// Batches returns a copy of the batches, earliest expiration first.
func (p *Perishable) Batches() []Batch {
	out := make([]Batch, len(p.batches))
	copy(out, p.batches)
	return out
}
