package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIdQueryHandler retrieves a single order by identifier.
type GetOrderByIdQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIdQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIdQueryHandler(db *gorm.DB) GetOrderByIdQueryHandler {
	return GetOrderByIdQueryHandler{db: db}
}

// Handle executes the lookup. An unknown identifier fails with an
// ObjectNotFoundError.
func (h GetOrderByIdQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIdQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var orderResp OrderQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			shipping_street,
			shipping_city,
			shipping_state,
			shipping_postal_code,
			shipping_country,
			order_date
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderResp.OrderNumber,
		&orderResp.Status,
		&orderResp.Street,
		&orderResp.City,
		&orderResp.State,
		&orderResp.PostalCode,
		&orderResp.Country,
		&orderResp.OrderDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}
	orderResp.ID = orderID

	return orderResp, nil
}
