package stockroom

import (
	"fmt"

	"github.com/etnz/stockroom/date"
)

// CommandType is a typed string identifying a journaled mutation.
type CommandType string

// Command types used for identifying journal entries.
const (
	CmdRestock CommandType = "restock"
	CmdUpdate  CommandType = "update"
	CmdFulfill CommandType = "fulfill"
)

// maxJournalDepth bounds the journal to the most recent mutations.
const maxJournalDepth = 100

// Entry is one reversible mutation record. Besides describing what happened,
// it carries the previous state needed to apply the actual inverse: the flat
// quantity before the mutation for plain items, or the touched batches with
// their previous quantities for perishable items.
type Entry struct {
	Command CommandType `json:"command"`
	Date    date.Date   `json:"date"`
	Item    string      `json:"item"`
	Delta   Quantity    `json:"delta"` // signed change applied to the item

	PrevQuantity *Quantity `json:"prevQuantity,omitempty"`
	PrevBatches  []Batch   `json:"prevBatches,omitempty"`
}

// Describe returns a one-line human-readable description of the mutation.
func (e Entry) Describe() string {
	switch e.Command {
	case CmdRestock:
		if len(e.PrevBatches) > 0 {
			return fmt.Sprintf("restock %q %s (batch expiring %s)", e.Item, signed(e.Delta), e.PrevBatches[0].Expires)
		}
		return fmt.Sprintf("restock %q %s", e.Item, signed(e.Delta))
	case CmdUpdate:
		return fmt.Sprintf("update %q %s", e.Item, signed(e.Delta))
	case CmdFulfill:
		return fmt.Sprintf("fulfill order %q %s", e.Item, signed(e.Delta))
	default:
		return fmt.Sprintf("%s %q %s", e.Command, e.Item, signed(e.Delta))
	}
}

// signed formats a quantity with an explicit sign.
func signed(q Quantity) string {
	if q.IsNegative() {
		return q.String()
	}
	return "+" + q.String()
}

// journal is a bounded stack of reversible mutation records, most recent
// last. Pushing beyond the depth limit drops the oldest entries.
type journal []Entry

func (j *journal) push(e Entry) {
	*j = append(*j, e)
	if len(*j) > maxJournalDepth {
		*j = (*j)[len(*j)-maxJournalDepth:]
	}
}

func (j *journal) pop() (Entry, bool) {
	if len(*j) == 0 {
		return Entry{}, false
	}
	e := (*j)[len(*j)-1]
	*j = (*j)[:len(*j)-1]
	return e, true
}
