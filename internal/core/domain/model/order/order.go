package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a shipment order. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Order number is non-blank and immutable after creation
//   - Shipping address is a validated value object, immutable once attached
//   - Status only changes through the transition table; Delivered and
//     Cancelled are terminal
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields so invariants can only be affected through
// the documented methods. Mutations refresh updatedAt on success and leave
// the aggregate untouched on failure.
type Order struct {
	id              kernel.UUID
	orderNumber     string
	shippingAddress kernel.Address
	status          Status
	orderDate       time.Time
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// The order number must be non-blank; it is intended to be unique across the
// system, with uniqueness enforced by the persistence layer. OrderDate and
// both audit timestamps are set to the current UTC time.
func NewOrder(id kernel.UUID, orderNumber string, shippingAddress kernel.Address) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		orderDate:     now,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation rules. The snapshot must be complete; field values are validated
// but timestamps are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	shippingAddress kernel.Address,
	status Status,
	orderDate time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		orderDate:     orderDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setShippingAddress(shippingAddress),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call when rehydrating orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the business-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// ShippingAddress returns the destination address.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the UTC time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// CreatedAt returns the creation audit timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation audit timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdateStatus moves the order to newStatus if the transition table allows
// it. A transition to the current status is a no-op that still refreshes
// updatedAt. The transition rule's failure is propagated unchanged and the
// order is left unmodified.
func (o *Order) UpdateStatus(newStatus Status) error {
	if err := ValidateTransition(o.status, newStatus); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if isBlank(orderNumber) {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setShippingAddress(shippingAddress kernel.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
