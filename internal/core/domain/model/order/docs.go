// Package order implements the shipment order aggregate.
//
// The package provides the Order aggregate root, the Status enumeration, and
// the status transition rule — the single source of truth for which lifecycle
// transitions are legal. The transition table is an immutable package-level
// constant; Delivered and Cancelled are terminal states.
//
// Orders are created in Pending status via NewOrder, rehydrated from storage
// via RestoreOrder, and mutated only through UpdateStatus. Every mutation is
// all-or-nothing: on failure the aggregate is left untouched.
package order
