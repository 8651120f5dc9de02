package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderByIdQueryIsNotConstructed = errors.New(
	"GetOrderByIdQuery must be created via NewGetOrderByIdQuery constructor",
)

// GetOrderByIdQuery retrieves a single order by its unique identifier.
type GetOrderByIdQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIdQuery creates a query for a single order lookup.
// Validates that the identifier is not the zero UUID.
func NewGetOrderByIdQuery(orderID kernel.UUID) (GetOrderByIdQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIdQuery{}, err
	}

	return GetOrderByIdQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIdQueryIsNotConstructed if validation fails.
func (q GetOrderByIdQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIdQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderByIdQuery) OrderID() kernel.UUID {
	return q.orderID
}
