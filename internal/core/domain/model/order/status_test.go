package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Confirmed))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Packed))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.OutForDelivery))
		assert.Equal(t, 6, int(order.Delivered))
		assert.Equal(t, 7, int(order.Cancelled))
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:        "unknown",
		order.Confirmed:      "order_confirmed",
		order.Processing:     "processing",
		order.Packed:         "packed",
		order.Shipped:        "shipped",
		order.OutForDelivery: "out_for_delivery",
		order.Delivered:      "delivered",
		order.Cancelled:      "cancelled",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	t.Run("should render out-of-range values as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every vocabulary member", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Confirmed, order.Processing, order.Packed,
			order.Shipped, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject non-members", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "refunded", "ORDER_CONFIRMED"} {
			_, err := order.StatusFromString(raw)
			require.Error(t, err, "input %q", raw)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Confirmed, order.Processing, order.Packed,
			order.Shipped, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, status := range order.InFlightStatuses() {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("should accept any move out of a non-terminal state", func(t *testing.T) {
		targets := []order.Status{
			order.Confirmed, order.Processing, order.Packed,
			order.Shipped, order.OutForDelivery, order.Delivered, order.Cancelled,
		}

		for _, from := range order.InFlightStatuses() {
			for _, to := range targets {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.ChangeTo(to)
					require.NoError(t, err)
					assert.Equal(t, to, next)
				})
			}
		}
	})

	t.Run("should accept backward moves", func(t *testing.T) {
		next, err := order.Shipped.ChangeTo(order.Processing)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, next)
	})

	t.Run("should reject every move out of a terminal state", func(t *testing.T) {
		targets := []order.Status{
			order.Confirmed, order.Processing, order.Packed,
			order.Shipped, order.OutForDelivery, order.Delivered, order.Cancelled,
		}

		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range targets {
				_, err := from.ChangeTo(to)
				require.Error(t, err, "%s to %s", from, to)
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			}
		}
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := order.Confirmed.ChangeTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestInFlightStatuses(t *testing.T) {
	assert.ElementsMatch(t, []order.Status{
		order.Confirmed, order.Processing, order.Packed, order.Shipped, order.OutForDelivery,
	}, order.InFlightStatuses())
}
