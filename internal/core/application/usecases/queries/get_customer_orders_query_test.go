package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		customerID := kernel.NewUUID()

		query, err := queries.NewGetCustomerOrdersQuery(customerID)
		require.NoError(t, err)

		assert.True(t, query.CustomerID().IsEqual(customerID))
		require.NoError(t, query.Validate())
	})

	t.Run("should reject unconstructed customer id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := queries.NewGetCustomerOrdersQuery(zero)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetCustomerOrdersQuery
		err := query.Validate()
		require.Error(t, err)
		assert.Equal(t, queries.ErrGetCustomerOrdersQueryIsNotConstructed, err)
	})
}
