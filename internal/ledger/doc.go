// Package ledger holds the derived-value calculations of the finance tracker:
// budget progress, category roll-ups, balance recomputation and reporting
// periods. Everything here is pure; callers supply the rows and sums.
package ledger
