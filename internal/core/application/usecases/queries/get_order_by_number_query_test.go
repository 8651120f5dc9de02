package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByNumberQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByNumberQuery("ORD-2024-001")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ORD-2024-001", query.OrderNumber())
}

func TestNewGetOrderByNumberQuery_EmptyOrderNumber(t *testing.T) {
	_, err := queries.NewGetOrderByNumberQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderNumberIsRequired)
}

func TestGetOrderByNumberQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByNumberQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByNumberQueryIsNotConstructed)
}
