package order_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Processing))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "Unknown",
		order.Pending:    "Pending",
		order.Confirmed:  "Confirmed",
		order.Processing: "Processing",
		order.Shipped:    "Shipped",
		order.Delivered:  "Delivered",
		order.Cancelled:  "Cancelled",
		order.Status(42): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestValidateTransition(t *testing.T) {
	allStatuses := []order.Status{
		order.Pending,
		order.Confirmed,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
	}

	allowedEdges := map[order.Status][]order.Status{
		order.Pending:    {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	t.Run("succeeds exactly for graph edges and self-transitions", func(t *testing.T) {
		for _, current := range allStatuses {
			for _, next := range allStatuses {
				expectOK := current == next
				for _, allowed := range allowedEdges[current] {
					if allowed == next {
						expectOK = true
					}
				}

				err := order.ValidateTransition(current, next)
				if expectOK {
					require.NoError(t, err, "%s -> %s should be allowed", current, next)
				} else {
					require.Error(t, err, "%s -> %s should be rejected", current, next)
					require.ErrorIs(t, err, errs.ErrStateConflict)
				}
			}
		}
	})

	t.Run("failure names both states and the legal set", func(t *testing.T) {
		err := order.ValidateTransition(order.Pending, order.Delivered)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pending")
		assert.Contains(t, err.Error(), "Delivered")
		assert.Contains(t, err.Error(), "Confirmed")
		assert.Contains(t, err.Error(), "Cancelled")
	})

	t.Run("self-transition on terminal states succeeds", func(t *testing.T) {
		require.NoError(t, order.ValidateTransition(order.Delivered, order.Delivered))
		require.NoError(t, order.ValidateTransition(order.Cancelled, order.Cancelled))
	})

	t.Run("terminal states reject every other target", func(t *testing.T) {
		for _, current := range []order.Status{order.Delivered, order.Cancelled} {
			for _, next := range allStatuses {
				if next == current {
					continue
				}
				err := order.ValidateTransition(current, next)
				require.Error(t, err, "%s -> %s", current, next)
			}
		}
	})
}

func TestValidNextStatuses(t *testing.T) {
	t.Run("returns allowed set for active statuses", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]order.Status{order.Confirmed, order.Cancelled},
			order.ValidNextStatuses(order.Pending))
		assert.ElementsMatch(t,
			[]order.Status{order.Delivered},
			order.ValidNextStatuses(order.Shipped))
	})

	t.Run("returns empty set for terminal statuses", func(t *testing.T) {
		assert.Empty(t, order.ValidNextStatuses(order.Delivered))
		assert.Empty(t, order.ValidNextStatuses(order.Cancelled))
	})

	t.Run("returns empty set for unrecognized statuses", func(t *testing.T) {
		assert.Empty(t, order.ValidNextStatuses(order.Unknown))
		assert.Empty(t, order.ValidNextStatuses(order.Status(42)))
	})
}

func TestIsTerminalStatus(t *testing.T) {
	t.Run("true exactly for Delivered and Cancelled", func(t *testing.T) {
		assert.True(t, order.IsTerminalStatus(order.Delivered))
		assert.True(t, order.IsTerminalStatus(order.Cancelled))

		assert.False(t, order.IsTerminalStatus(order.Pending))
		assert.False(t, order.IsTerminalStatus(order.Confirmed))
		assert.False(t, order.IsTerminalStatus(order.Processing))
		assert.False(t, order.IsTerminalStatus(order.Shipped))
	})

	t.Run("false for unrecognized statuses", func(t *testing.T) {
		assert.False(t, order.IsTerminalStatus(order.Unknown))
		assert.False(t, order.IsTerminalStatus(order.Status(42)))
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every valid status name", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("is case-sensitive and rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"pending", "SHIPPED", "Unknown", ""} {
			_, err := order.ParseStatus(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
