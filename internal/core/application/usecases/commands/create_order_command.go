package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// CreateOrderCommand represents a request to register a new shipment order.
// Carries the order identity, its business order number, and the raw shipping
// address fields; the address value object is assembled by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-2026-0001",
//	    "Dluga 5", "Gdansk", "", "80-827", "POL")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	street      string
	city        string
	state       string
	postalCode  string
	country     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates that the order ID is valid and the order number is not empty;
// address fields are validated later when the Address value object is built.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber, street, city, state, postalCode, country string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderNumber(orderNumber),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the business order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Street returns the shipping street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the shipping city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// State returns the shipping state or province, may be empty.
func (c CreateOrderCommand) State() string {
	return c.state
}

// PostalCode returns the shipping postal code, may be empty.
func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

// Country returns the ISO 3166-1 alpha-3 country code.
func (c CreateOrderCommand) Country() string {
	return c.country
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}
