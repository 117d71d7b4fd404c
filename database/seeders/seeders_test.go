package seeders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/internal/testdb"
)

func TestFixtures(t *testing.T) {
	db := testdb.Seeded(t)

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(5), count(&models.User{}))
	assert.Equal(t, int64(3), count(&models.Customer{}))
	assert.Equal(t, int64(2), count(&models.CustomerAddress{}))
	assert.Equal(t, int64(9), count(&models.Product{}))
	assert.Equal(t, int64(3), count(&models.Order{}))
	assert.Equal(t, int64(3), count(&models.OrderDetails{}))

	var p models.Product
	require.NoError(t, db.First(&p, 9).Error)
	assert.Equal(t, "29459", p.Sku)
	assert.Equal(t, "42.95", p.Price.Fixed())

	var d models.OrderDetails
	require.NoError(t, db.Where("order_id = ?", 3).First(&d).Error)
	assert.Equal(t, int64(2), d.ProductID)
	assert.Equal(t, 22, d.Quantity)
}
