package stockroom

import (
	"fmt"
	"slices"

	"github.com/etnz/stockroom/date"
)

// Batch is a dated sub-quantity of a perishable item.
type Batch struct {
	Quantity Quantity  `json:"quantity"`
	Expires  date.Date `json:"expires"`
}

// batches holds the dated batches of one perishable item, kept sorted by
// expiration date ascending so that consumption is earliest-expiring first.
//
// A perishable item has at most one batch per distinct expiration date, and
// batches are never removed, even at zero quantity.
type batches []Batch

// total returns the sum of all batch quantities.
func (b batches) total() Quantity {
	var sum Quantity
	for _, batch := range b {
		sum = sum.Add(batch.Quantity)
	}
	return sum
}

// find returns the index of the batch expiring on a given day, or -1.
func (b batches) find(on date.Date) int {
	return slices.IndexFunc(b, func(batch Batch) bool { return batch.Expires == on })
}

// merge adds quantity to the batch expiring on the given day, creating the
// batch if no batch exists for that date yet.
func (b *batches) merge(qty Quantity, on date.Date) {
	if i := b.find(on); i >= 0 {
		(*b)[i].Quantity = (*b)[i].Quantity.Add(qty)
		return
	}
	*b = append(*b, Batch{Quantity: qty, Expires: on})
	slices.SortStableFunc(*b, func(x, y Batch) int {
		switch {
		case x.Expires.Before(y.Expires):
			return -1
		case x.Expires.After(y.Expires):
			return 1
		default:
			return 0
		}
	})
}

// set overwrites the quantity of the batch expiring on the given day,
// creating the batch if needed. Only the journal inversion uses it.
func (b *batches) set(qty Quantity, on date.Date) {
	if i := b.find(on); i >= 0 {
		(*b)[i].Quantity = qty
		return
	}
	b.merge(qty, on)
}

// consume removes the requested quantity, draining the earliest-expiring
// batch first. Zero-quantity batches stay in place. Fulfillment is
// all-or-nothing: if less than the requested quantity is on hand, consume
// fails and no batch is touched.
//
// It returns the previous quantities of the batches it drained, for the
// journal to record.
func (b batches) consume(requested Quantity) ([]Batch, error) {
	if requested.IsNegative() {
		return nil, fmt.Errorf("cannot consume %s: %w", requested, ErrInvalidAmount)
	}
	if b.total().LessThan(requested) {
		return nil, fmt.Errorf("requested %s but only %s on hand: %w", requested, b.total(), ErrInsufficientStock)
	}

	var drained []Batch
	remaining := requested
	for i := range b {
		if remaining.IsZero() {
			break
		}
		if b[i].Quantity.IsZero() {
			continue
		}
		drained = append(drained, b[i])
		if b[i].Quantity.GreaterThan(remaining) {
			b[i].Quantity = b[i].Quantity.Sub(remaining)
			remaining = Q(0)
		} else {
			remaining = remaining.Sub(b[i].Quantity)
			b[i].Quantity = Q(0)
		}
	}
	return drained, nil
}

// expiringWithin returns the batches whose expiration date falls inside the
// range, boundaries included.
func (b batches) expiringWithin(r date.Range) []Batch {
	var out []Batch
	for _, batch := range b {
		if r.Contains(batch.Expires) {
			out = append(out, batch)
		}
	}
	return out
}

// earliest returns the earliest-expiring batch, if any.
func (b batches) earliest() (Batch, bool) {
	if len(b) == 0 {
		return Batch{}, false
	}
	return b[0], true
}
