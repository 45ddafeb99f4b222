package stockroom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/stockroom/date"
)

// OrderResult reports the outcome of one processed order. A failed order is
// reported and skipped; it never aborts the rest of the queue.
type OrderResult struct {
	Order     string   // raw order text as it was enqueued
	Item      string   // resolved item name, when the lookup succeeded
	Requested Quantity // parsed requested quantity
	Remaining Quantity // quantity left on hand after fulfillment
	Err       error    // nil on success
}

// Enqueue appends a raw order of the form "<quantity> <item name words...>"
// to the pending queue.
func (l *Ledger) Enqueue(text string) { l.orders = append(l.orders, text) }

// PendingOrders returns a copy of the queue in arrival order.
func (l *Ledger) PendingOrders() []string {
	out := make([]string, len(l.orders))
	copy(out, l.orders)
	return out
}

// ProcessOrders drains the queue to empty, fulfilling one order at a time in
// arrival order, and returns one result per order. Fulfillment is
// all-or-nothing per order: an order requesting more than is on hand leaves
// the item untouched and is reported as failed.
func (l *Ledger) ProcessOrders() []OrderResult {
	var results []OrderResult
	for len(l.orders) > 0 {
		text := l.orders[0]
		l.orders = l.orders[1:]
		results = append(results, l.fulfill(text))
	}
	return results
}

// parseOrder splits order text into a requested quantity and an item name.
func parseOrder(text string) (qty int, name string, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, "", fmt.Errorf("order %q wants \"<quantity> <item name>\": %w", text, ErrMalformedOrder)
	}
	qty, aerr := strconv.Atoi(fields[0])
	if aerr != nil {
		return 0, "", fmt.Errorf("order %q has no leading quantity: %w", text, ErrMalformedOrder)
	}
	if qty < 0 {
		return 0, "", fmt.Errorf("order %q has a negative quantity: %w", text, ErrMalformedOrder)
	}
	return qty, strings.Join(fields[1:], " "), nil
}

// fulfill processes a single order against the ledger.
func (l *Ledger) fulfill(text string) OrderResult {
	res := OrderResult{Order: text}

	qty, name, err := parseOrder(text)
	if err != nil {
		res.Err = err
		return res
	}
	res.Requested = Q(qty)

	it, ok := l.Get(name)
	if !ok && strings.HasSuffix(normalize(name), "s") {
		// Naive singular/plural folding: "10 apples" matches the item "Apple".
		// This is a documented heuristic, not general pluralization.
		it, ok = l.Get(strings.TrimSuffix(normalize(name), "s"))
	}
	if !ok {
		res.Err = fmt.Errorf("no item matches order %q: %w", text, ErrItemNotFound)
		return res
	}
	res.Item = it.Name()

	switch v := it.(type) {
	case *Plain:
		prev := v.Quantity()
		if err := v.RemoveStock(res.Requested); err != nil {
			res.Err = err
			return res
		}
		l.journal.push(Entry{
			Command:      CmdFulfill,
			Date:         date.Today(),
			Item:         v.Name(),
			Delta:        Q(-qty),
			PrevQuantity: &prev,
		})
	case *Perishable:
		drained, err := v.batches.consume(res.Requested)
		if err != nil {
			res.Err = err
			return res
		}
		l.journal.push(Entry{
			Command:     CmdFulfill,
			Date:        date.Today(),
			Item:        v.Name(),
			Delta:       Q(-qty),
			PrevBatches: drained,
		})
	}
	res.Remaining = it.Quantity()
	return res
}
