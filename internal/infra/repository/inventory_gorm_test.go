package repository

import (
	"context"
	"testing"
	"time"

	"arcoiris/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryGormRepository_DecreaseStockIfEnough(t *testing.T) {
	db := testDB(t)
	variants := NewVariantGormRepository(db)
	inventory := NewInventoryGormRepository(db)
	ctx := context.Background()

	v, err := variants.Create(ctx, model.Variant{
		ProductID: time.Now().UnixNano(),
		Color:     "negro",
		Price:     decimal.NewFromInt(1000),
		Stock:     3,
	})
	require.NoError(t, err)

	ok, err := inventory.DecreaseStockIfEnough(ctx, v.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// Asking for more than remains decrements nothing.
	ok, err = inventory.DecreaseStockIfEnough(ctx, v.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := variants.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Stock)

	ok, err = inventory.DecreaseStockIfEnough(ctx, v.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = variants.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock)
}
