package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(variantID int64, price int64, qty int64) Item {
	return Item{
		VariantID: variantID,
		Name:      "item",
		UnitPrice: decimal.NewFromInt(price),
		Quantity:  qty,
	}
}

func TestStore_AddSameVariantMergesLines(t *testing.T) {
	s := NewStore(NewMemoryPersister())

	s.Add(item(10, 1000, 2))
	s.Add(item(10, 1000, 3))

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestStore_AddKeepsFirstPrice(t *testing.T) {
	s := NewStore(NewMemoryPersister())

	s.Add(item(10, 1000, 1))
	// A price change between adds does not reprice the existing line.
	s.Add(item(10, 1200, 1))

	items := s.Items()
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.Total().Equal(decimal.NewFromInt(2000)))
}

func TestStore_SetQuantityZeroRemovesLine(t *testing.T) {
	s := NewStore(NewMemoryPersister())

	s.Add(item(10, 1000, 2))
	s.SetQuantity(10, 0)

	assert.Empty(t, s.Items())
}

func TestStore_Total(t *testing.T) {
	s := NewStore(NewMemoryPersister())

	s.Add(item(10, 1000, 2))
	s.Add(item(11, 350, 3))

	assert.True(t, s.Total().Equal(decimal.NewFromInt(3050)))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	p := NewMemoryPersister()

	s1 := NewStore(p)
	s1.Add(item(10, 1000, 2))
	s1.SetReferralCode("TIENDA22")

	s2 := NewStore(p)
	assert.Len(t, s2.Items(), 1)
	assert.Equal(t, int64(2), s2.Items()[0].Quantity)
	assert.Equal(t, "TIENDA22", s2.ReferralCode())
}

func TestStore_ClearKeepsReferralCode(t *testing.T) {
	s := NewStore(NewMemoryPersister())

	s.Add(item(10, 1000, 2))
	s.SetReferralCode("TIENDA22")
	s.Clear()

	assert.Empty(t, s.Items())
	assert.Equal(t, "TIENDA22", s.ReferralCode())
}
