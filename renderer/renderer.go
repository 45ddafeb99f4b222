// Package renderer builds the markdown views of stockroom reports. The cmd
// layer renders the returned markdown for the terminal.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/date"
	md "github.com/nao1215/markdown"
)

// kind returns the display label of an item's kind.
func kind(it stockroom.Item) string {
	if it.IsPerishable() {
		return "perishable"
	}
	return "plain"
}

// itemRows builds the standard item table rows.
func itemRows(items []stockroom.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name(), it.Section(), it.Quantity().String(), kind(it)})
	}
	return rows
}

// Items renders the full item list under a title.
func Items(title string, items []stockroom.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(items) == 0 {
		doc.PlainText("The store is empty.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Section", "Quantity", "Kind"},
		Rows:   itemRows(items),
	})
	return doc.String()
}

// LowStock renders the low-stock report.
func LowStock(items []stockroom.Item, low int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Low Stock (below %d)", low))
	if len(items) == 0 {
		doc.PlainText("No item is low on stock.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Section", "Quantity", "Kind"},
		Rows:   itemRows(items),
	})
	return doc.String()
}

// OverStock renders the over-stock report.
func OverStock(items []stockroom.Item, over int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Over Stock (above %d)", over))
	if len(items) == 0 {
		doc.PlainText("No item is overstocked.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Section", "Quantity", "Kind"},
		Rows:   itemRows(items),
	})
	return doc.String()
}

// Expiring renders the expiring-soon report, one row per batch.
func Expiring(on date.Date, batches []stockroom.ExpiringBatch) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expiring within a week of %s", on))
	if len(batches) == 0 {
		doc.PlainText("No batch expires within the week.")
		return doc.String()
	}
	rows := make([][]string, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, []string{b.Item, b.Section, b.Batch.Quantity.String(), b.Batch.Expires.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Section", "Quantity", "Expires"},
		Rows:   rows,
	})
	return doc.String()
}

// MostStocked renders the most-stocked item line.
func MostStocked(name string, qty stockroom.Quantity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Most Stocked Product")
	doc.PlainText(fmt.Sprintf("%s (%s units)", name, qty))
	return doc.String()
}

// Sections renders the per-section grouping with per-group totals.
func Sections(groups []stockroom.SectionGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sections")
	if len(groups) == 0 {
		doc.PlainText("The store is empty.")
		return doc.String()
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Section, fmt.Sprintf("%d", len(g.Items)), g.Total.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Section", "Items", "Total Units"},
		Rows:   rows,
	})
	return doc.String()
}

// Summary renders the manager-only store overview.
func Summary(s *stockroom.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Store Summary on %s", s.Date))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Items tracked", fmt.Sprintf("%d", s.Items)},
			{"Units on hand", s.Units.String()},
			{"Items low on stock", fmt.Sprintf("%d", s.LowStock)},
			{fmt.Sprintf("Contributed by %s", s.Manager), s.Contributed.String()},
		},
	})
	return doc.String()
}

// OrderResults renders the outcome of a processed order queue, one row per
// order in processing order.
func OrderResults(results []stockroom.OrderResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Processed Orders")
	if len(results) == 0 {
		doc.PlainText("The order queue was empty.")
		return doc.String()
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "fulfilled"
		remaining := r.Remaining.String()
		if r.Err != nil {
			status = r.Err.Error()
			remaining = "-"
		}
		rows = append(rows, []string{r.Order, r.Item, remaining, status})
	}
	doc.Table(md.TableSet{
		Header: []string{"Order", "Item", "Remaining", "Status"},
		Rows:   rows,
	})
	return doc.String()
}

// Contributions renders the per-manager contribution totals, sorted by name.
func Contributions(contrib map[string]stockroom.Quantity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Manager Contributions")
	if len(contrib) == 0 {
		doc.PlainText("No contribution recorded yet.")
		return doc.String()
	}
	managers := make([]string, 0, len(contrib))
	for m := range contrib {
		managers = append(managers, m)
	}
	sort.Strings(managers)

	rows := make([][]string, 0, len(managers))
	for _, m := range managers {
		rows = append(rows, []string{m, contrib[m].String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Manager", "Units Added"},
		Rows:   rows,
	})
	return doc.String()
}
