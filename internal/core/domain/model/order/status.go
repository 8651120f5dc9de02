package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached its shipping address. Terminal.
	Delivered

	// Cancelled indicates the order was called off before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// validTransitions is the single source of truth for legal status transitions.
// It is built once at package initialization and never mutated, so it is
// safe for concurrent reads. Statuses absent from the map, and statuses whose
// set is empty, allow no outgoing transition.
var validTransitions = map[Status][]Status{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
}

// Validate checks if the Status value is one of the six order statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// unrecognized values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name into a Status value. Matching is
// case-sensitive and Unknown is not accepted.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// ValidateTransition checks whether moving from current to next is legal.
// A transition to the same status is a no-op and always succeeds, terminal
// states included. Any other pair not present in the transition table fails
// with a StateConflictError naming both states and the legal next-state set.
func ValidateTransition(current, next Status) error {
	if current == next {
		return nil
	}

	for _, allowed := range validTransitions[current] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewStateConflictError(current.String(), next.String(), statusNames(validTransitions[current]))
}

// ValidNextStatuses returns the statuses reachable from current in one
// transition. The result is a copy; terminal and unrecognized statuses yield
// an empty slice.
func ValidNextStatuses(current Status) []Status {
	allowed := validTransitions[current]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminalStatus reports whether status is a recognized status with no
// outgoing transitions. Unrecognized statuses return false.
func IsTerminalStatus(status Status) bool {
	allowed, ok := validTransitions[status]
	return ok && len(allowed) == 0
}

func statusNames(statuses []Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}
