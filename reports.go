package stockroom

import (
	"github.com/etnz/stockroom/date"
)

// expiringWindowDays is the report horizon: a batch expiring within
// [today, today+expiringWindowDays] inclusive is reported as expiring soon.
const expiringWindowDays = 7

// LowStock returns the items with quantity strictly below the low threshold,
// in insertion order.
func (l *Ledger) LowStock() []Item {
	var out []Item
	low := Q(l.thresholds.Low)
	for it := range l.All() {
		if it.Quantity().LessThan(low) {
			out = append(out, it)
		}
	}
	return out
}

// LowStockCount returns the number of items low on stock.
func (l *Ledger) LowStockCount() int { return len(l.LowStock()) }

// OverStock returns the items with quantity strictly above the over
// threshold, in insertion order.
func (l *Ledger) OverStock() []Item {
	var out []Item
	over := Q(l.thresholds.Over)
	for it := range l.All() {
		if it.Quantity().GreaterThan(over) {
			out = append(out, it)
		}
	}
	return out
}

// ExpiringBatch is one batch due to expire soon. The report is per-batch, not
// per-item, since one item may have several qualifying batches.
type ExpiringBatch struct {
	Item    string
	Section string
	Batch   Batch
}

// Expiring lists every batch of every perishable item whose expiration date
// falls within [today, today+7] inclusive.
func (l *Ledger) Expiring(today date.Date) []ExpiringBatch {
	window := date.Next(today, expiringWindowDays)
	var out []ExpiringBatch
	for it := range l.All() {
		p, ok := it.(*Perishable)
		if !ok {
			continue
		}
		for _, b := range p.batches.expiringWithin(window) {
			out = append(out, ExpiringBatch{Item: p.Name(), Section: p.Section(), Batch: b})
		}
	}
	return out
}

// MostStocked returns the item holding the maximum quantity. Ties resolve to
// the first item in insertion order. An empty ledger yields ("none", 0).
func (l *Ledger) MostStocked() (name string, qty Quantity) {
	name, qty = "none", Q(0)
	first := true
	for it := range l.All() {
		if first || it.Quantity().GreaterThan(qty) {
			name, qty = it.Name(), it.Quantity()
			first = false
		}
	}
	return name, qty
}

// SectionGroup is the slice of items sharing one store section, with the
// group's total quantity.
type SectionGroup struct {
	Section string
	Items   []Item
	Total   Quantity
}

// BySection partitions the items by store section. Groups appear in order of
// first appearance, items keep insertion order within their group.
func (l *Ledger) BySection() []SectionGroup {
	var groups []SectionGroup
	at := make(map[string]int)
	for it := range l.All() {
		i, ok := at[it.Section()]
		if !ok {
			i = len(groups)
			at[it.Section()] = i
			groups = append(groups, SectionGroup{Section: it.Section()})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Total = groups[i].Total.Add(it.Quantity())
	}
	return groups
}

// Summary is the manager-only overview of the store.
type Summary struct {
	Date        date.Date
	Manager     string
	Items       int      // number of items tracked
	Units       Quantity // total units on hand across all items
	LowStock    int      // number of items low on stock
	Contributed Quantity // the manager's cumulative added quantity
}

// Summarize builds the store summary for a manager on a given day.
func (l *Ledger) Summarize(manager string, on date.Date) *Summary {
	var units Quantity
	for it := range l.All() {
		units = units.Add(it.Quantity())
	}
	return &Summary{
		Date:        on,
		Manager:     manager,
		Items:       l.Len(),
		Units:       units,
		LowStock:    l.LowStockCount(),
		Contributed: l.Contribution(manager),
	}
}
