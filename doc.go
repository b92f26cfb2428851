// Package stockavg computes the average purchase price of a stock bought in
// several transactions. It is local-first and stateless: nothing is stored
// between two runs.
//
// The core functionalities include:
//   - Ledger Management: an ordered set of purchases (quantity and price per
//     share) for one stock, always holding at least two entries.
//   - Averaging Engine: a pure function turning a ledger snapshot into the
//     total shares, the total investment and the volume-weighted average price.
//   - Result Shaping: the report table and the chart series consumed by the
//     document, notification and terminal renderers.
//
// Amounts are exact decimals. They are rounded only for presentation, always
// half-up to the currency minor unit, see Money.Round.
//
// This package is the foundational logic for the `savg` command-line tool.
package stockavg
