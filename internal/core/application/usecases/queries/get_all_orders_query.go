// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrPageNumberIsInvalid = errors.New("page number must be at least 1")
	ErrPageSizeIsInvalid   = errors.New("page size must be at least 1")
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// GetAllOrdersQuery retrieves a page of orders, optionally narrowed by
// status and order-date range. Returns order identities, statuses, and
// shipping destinations for monitoring and fulfillment dashboards.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	for _, o := range page.Items {
//	    fmt.Printf("Order %s is %s\n", o.OrderNumber, o.Status)
//	}
type GetAllOrdersQuery struct {
	pageNumber int
	pageSize   int
	status     *order.Status
	fromDate   *time.Time
	toDate     *time.Time

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the first page of orders with
// the default page size and no filters.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{
		pageNumber: defaultPageNumber,
		pageSize:   defaultPageSize,
		guard:      guard.NewConstructorGuard(),
	}
}

// NewFilteredGetAllOrdersQuery creates a query for a specific page of
// orders. A nil status or date leaves that filter off. Dates bound the
// order date inclusively on both ends.
func NewFilteredGetAllOrdersQuery(
	pageNumber int,
	pageSize int,
	status *order.Status,
	fromDate *time.Time,
	toDate *time.Time,
) (GetAllOrdersQuery, error) {
	if pageNumber < 1 {
		return GetAllOrdersQuery{}, ErrPageNumberIsInvalid
	}
	if pageSize < 1 {
		return GetAllOrdersQuery{}, ErrPageSizeIsInvalid
	}

	return GetAllOrdersQuery{
		pageNumber: pageNumber,
		pageSize:   pageSize,
		status:     status,
		fromDate:   fromDate,
		toDate:     toDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// PageNumber returns the 1-based page to fetch.
func (q GetAllOrdersQuery) PageNumber() int {
	return q.pageNumber
}

// PageSize returns the number of orders per page.
func (q GetAllOrdersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the status filter, or nil when all statuses match.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// FromDate returns the inclusive lower bound on the order date, or nil.
func (q GetAllOrdersQuery) FromDate() *time.Time {
	return q.fromDate
}

// ToDate returns the inclusive upper bound on the order date, or nil.
func (q GetAllOrdersQuery) ToDate() *time.Time {
	return q.toDate
}

// OrderQueryResponse represents order information in the read model.
// Shared by the list and single-order queries.
type OrderQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      order.Status
	Street      string
	City        string
	State       string
	PostalCode  string
	Country     string
	OrderDate   time.Time
}

// PagedOrdersResponse is one page of the order read model together with
// the total number of orders matching the filters.
type PagedOrdersResponse struct {
	Items      []OrderQueryResponse
	TotalCount int64
	PageNumber int
	PageSize   int
}
