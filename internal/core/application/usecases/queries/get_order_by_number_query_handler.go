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

// GetOrderByNumberQueryHandler retrieves a single order by order number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. An unknown order number fails with an
// ObjectNotFoundError.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
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
		WHERE order_number = ?
	`, query.OrderNumber()).Row()

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
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
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
