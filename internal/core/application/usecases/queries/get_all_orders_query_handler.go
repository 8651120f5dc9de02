package queries

import (
	"context"
	"strings"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves pages of order information from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders sorted by
// order number, together with the total count of orders matching the
// filters.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var totalCount int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&totalCount).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	offset := (query.PageNumber() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		FROM orders`+where+`
		ORDER BY order_number
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return PagedOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderQueryResponse, 0)

	for rows.Next() {
		var orderResp OrderQueryResponse
		var id uuid.UUID

		err = rows.Scan(
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
		if err != nil {
			return PagedOrdersResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return PagedOrdersResponse{}, idErr
		}
		orderResp.ID = orderID
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return PagedOrdersResponse{}, err
	}

	return PagedOrdersResponse{
		Items:      orders,
		TotalCount: totalCount,
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
	}, nil
}

// buildOrderFilters renders the WHERE clause for the status and
// order-date filters. The clause starts with a leading space so it can
// be appended directly after the FROM clause, or is empty when no
// filter is set.
func buildOrderFilters(query GetAllOrdersQuery) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}
	if from := query.FromDate(); from != nil {
		conditions = append(conditions, "order_date >= ?")
		args = append(args, *from)
	}
	if to := query.ToDate(); to != nil {
		conditions = append(conditions, "order_date <= ?")
		args = append(args, *to)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
