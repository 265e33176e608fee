// Package order contains the Order aggregate and its supporting value objects.
//
// The aggregate owns the invariants of the order lifecycle: the human-readable
// order number is assigned exactly once at creation and never regenerated, the
// financial fields (subtotal, tax, shipping, total) are derived once from the
// line items and never recomputed on later status changes, and status moves
// are validated against the terminal set before being applied.
//
// Supporting value objects:
//   - Status: flat lifecycle enum with a terminal set {Delivered, Cancelled}
//   - PaymentMethod: closed set {cash, wallet, card, upi}
//   - Number: rendered identifier "ORD" + (100000 + sequence)
//   - LineItem: one product/quantity/price entry
package order
