// Package stockroom provides the types and operations for tracking the stock
// of a small retail store. It is designed to be local-first and auditable:
// all state lives in human-readable flat files that can be inspected and
// version-controlled.
//
// The core functionalities include:
//   - Inventory Ledger: the owning aggregate of all stock items, indexed by
//     normalized name, with explicit mutation operations (add, restock,
//     adjust, order fulfillment).
//   - Perishable Batches: expiration-dated sub-quantities of perishable
//     items, merged by date and consumed earliest-expiring first.
//   - Mutation Journal: a bounded log of reversible mutation records, so the
//     last stock change can actually be undone rather than merely reported.
//   - Derived Reports: low/over stock, expiring-soon batches, most-stocked
//     item, and per-section grouping.
//   - Data Persistence: encoding and decoding of inventory (CSV), pending
//     orders, manager contributions, and the mutation journal (JSONL).
//
// This package serves as the foundational logic for the `stok` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stockroom
