package stockroom

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeJournal writes the mutation journal to 'w' as JSONL, one entry per
// line, oldest entry first.
func EncodeJournal(w io.Writer, l *Ledger) error {
	bw := bufio.NewWriter(w)
	for _, e := range l.Journal() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot encode journal entry %s: %w", e.Describe(), err)
		}
		if _, err := bw.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write journal entry: %w", err)
		}
	}
	return bw.Flush()
}

// DecodeJournal decodes mutation records from a stream of JSONL data,
// returning the entries oldest first. A line that is not a valid entry is an
// error: the journal is machine written and must stay consistent to keep undo
// correct.
func DecodeJournal(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("cannot parse journal line %q: %w", string(line), err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read journal: %w", err)
	}
	return entries, nil
}
