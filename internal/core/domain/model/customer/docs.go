// Package customer models the denormalized customer snapshot embedded in orders.
//
// The customer directory itself is an external collaborator; the order core
// only reads from it. At order creation the resolved record is copied into a
// Snapshot so that later edits to the directory never retroactively change a
// historical order. The customer id remains as a weak back-reference for
// lookups, never as a live join.
package customer
