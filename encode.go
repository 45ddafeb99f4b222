package stockroom

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/stockroom/date"
)

// this file contains the flat-file codecs for inventory, pending orders and
// manager contributions. All formats are human readable, single file, and
// easy to diff.

// notAvailable is the literal written in place of an expiration date for
// non-perishable items.
const notAvailable = "N/A"

// EncodeInventory writes the ledger items to 'w' as CSV, one line per item:
//
//	name,quantity,expirationDateOrNA,section,perishable
//
// For a perishable item, the quantity and date written are those of its
// earliest-expiring batch, not the aggregated total. Round-tripping a
// perishable item holding several batches therefore loses the later batches;
// this truncation is deliberate, kept for compatibility with the legacy
// format, and asserted by the codec tests.
func EncodeInventory(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	for it := range l.All() {
		var record []string
		switch v := it.(type) {
		case *Plain:
			record = []string{v.Name(), v.Quantity().String(), notAvailable, v.Section(), "false"}
		case *Perishable:
			qty, expires := "0", notAvailable
			if b, ok := v.batches.earliest(); ok {
				qty, expires = b.Quantity.String(), b.Expires.String()
			}
			record = []string{v.Name(), qty, expires, v.Section(), "true"}
		default:
			return fmt.Errorf("cannot encode item %q: unknown item kind %T", it.Name(), it)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write inventory line for %q: %w", it.Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeInventory reads an inventory CSV from 'r' into a new ledger built
// with the given thresholds. Malformed lines (wrong field count, unparseable
// quantity, date or flag) are silently skipped; duplicate perishable names
// merge into the existing item's batches. I/O errors propagate.
func DecodeInventory(r io.Reader, t Thresholds) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	l := NewLedger(t)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue // malformed line, skip
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read inventory: %w", err)
		}
		if len(record) != 5 {
			continue
		}
		decodeInventoryRecord(l, record)
	}
	return l, nil
}

// decodeInventoryRecord merges one CSV record into the ledger, ignoring
// records it cannot make sense of.
func decodeInventoryRecord(l *Ledger, record []string) {
	name, section := record[0], record[3]
	qty, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil || qty < 0 {
		return
	}
	perishable, err := strconv.ParseBool(strings.TrimSpace(record[4]))
	if err != nil {
		return
	}

	if !perishable {
		p, err := NewPlain(name, section, qty)
		if err != nil {
			return
		}
		l.Add(p) // duplicate plain names are skipped
		return
	}

	existing, ok := l.index[normalize(name)]
	if ok {
		p, isPerishable := existing.(*Perishable)
		if !isPerishable {
			return
		}
		if expires, err := date.Parse(record[2]); err == nil {
			p.batches.merge(Q(qty), expires)
		}
		return
	}

	p, err := NewPerishable(name, section)
	if err != nil {
		return
	}
	// An N/A date on a perishable line means an item with no stock yet.
	if expires, err := date.Parse(record[2]); err == nil {
		p.batches.merge(Q(qty), expires)
	} else if strings.TrimSpace(record[2]) != notAvailable {
		return
	}
	l.Add(p)
}

// EncodeOrders writes the pending order queue to 'w', one raw order per line,
// arrival order preserved.
func EncodeOrders(w io.Writer, l *Ledger) error {
	bw := bufio.NewWriter(w)
	for _, order := range l.PendingOrders() {
		if _, err := fmt.Fprintln(bw, order); err != nil {
			return fmt.Errorf("cannot write pending order %q: %w", order, err)
		}
	}
	return bw.Flush()
}

// DecodeOrders reads pending orders from 'r' into the ledger queue, skipping
// blank lines.
func DecodeOrders(r io.Reader, l *Ledger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l.Enqueue(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read pending orders: %w", err)
	}
	return nil
}

// EncodeContributions writes the per-manager totals to 'w' as CSV lines
// "manager,total", sorted by manager name for stable diffs.
func EncodeContributions(w io.Writer, l *Ledger) error {
	contrib := l.Contributions()
	managers := make([]string, 0, len(contrib))
	for m := range contrib {
		managers = append(managers, m)
	}
	sort.Strings(managers)

	cw := csv.NewWriter(w)
	for _, m := range managers {
		if err := cw.Write([]string{m, contrib[m].String()}); err != nil {
			return fmt.Errorf("cannot write contribution for %q: %w", m, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeContributions reads per-manager totals from 'r' into the ledger,
// skipping malformed lines.
func DecodeContributions(r io.Reader, l *Ledger) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("cannot read contributions: %w", err)
		}
		if len(record) != 2 {
			continue
		}
		total, err := ParseQuantity(strings.TrimSpace(record[1]))
		if err != nil {
			continue
		}
		l.restoreContribution(record[0], total)
	}
}
