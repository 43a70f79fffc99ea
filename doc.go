// Package inventory provides the types and functions to track the stock of a
// small retail operation. It is designed to be local-first: the whole
// inventory lives in a single human-readable JSON file that the operator owns.
//
// The core functionalities include:
//   - Product: a passive record of one inventory item (code, name, price,
//     quantity on hand, minimum stock threshold and units sold).
//   - Registry: the keyed collection of products. It enforces the identity
//     and uniqueness rules, applies stock movements (receptions and sales) and
//     saves itself to its Store after every successful mutation.
//   - Persistence: encoding and decoding of the registry to and from a JSON
//     file, written atomically so that a crash never leaves a truncated file.
//   - Report: a stateless computation over a snapshot of the registry that
//     produces the inventory value, the low stock list, and the best and worst
//     sellers.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
