package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

const eps = 1e-9

func item(id int64, price float64) domain.Recommendation {
	return domain.Recommendation{ID: id, Title: "item", Price: price}
}

func TestCart_EmptyTotals(t *testing.T) {
	c := New(DefaultPricing)
	assert.Equal(t, Totals{}, c.CalculateTotal())

	c.SetBundle(&domain.Bundle{ItemIDs: []int64{1}})
	assert.Equal(t, Totals{}, c.CalculateTotal())
}

func TestCart_AddIsIdempotent(t *testing.T) {
	once := New(DefaultPricing)
	once.Add(item(1, 100))

	twice := New(DefaultPricing)
	twice.Add(item(1, 100))
	state := twice.Add(item(1, 100))

	assert.Equal(t, once.State(), state)
	assert.Len(t, state.Items, 1)
	assert.True(t, state.Open)
}

func TestCart_AddRemoveRoundTrip(t *testing.T) {
	c := New(DefaultPricing)
	c.Add(item(1, 100))
	c.Add(item(2, 50))
	before := c.State()

	added := c.Add(item(3, 25))
	require.Len(t, added.Items, 3)

	after := c.Remove(added.Items[2].ID)
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.Totals, after.Totals)

	// удаление отсутствующего ID ничего не меняет
	assert.Equal(t, after, c.Remove(42))
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	c := New(DefaultPricing)
	for _, id := range []int64{1, 2, 3, 4} {
		c.Add(item(id, 10))
	}

	state := c.Remove(2)
	got := make([]int64, 0, len(state.Items))
	for _, it := range state.Items {
		got = append(got, it.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, got)
}

func TestCart_DiscountOnlyWithFullBundle(t *testing.T) {
	c := New(DefaultPricing)
	c.SetBundle(&domain.Bundle{ID: "pkg1", ItemIDs: []int64{1, 2, 3}})

	c.Add(item(1, 100))
	c.Add(item(2, 50))
	partial := c.Add(item(4, 50))
	assert.False(t, partial.BundleComplete)
	assert.Zero(t, partial.Totals.Discount)

	full := c.Add(item(3, 50))
	require.True(t, full.BundleComplete)
	assert.InDelta(t, 250.0, full.Totals.Subtotal, eps)
	assert.InDelta(t, 12.5, full.Totals.Discount, eps)
	assert.InDelta(t, 250*0.95*1.18, full.Totals.Total, eps)

	for _, id := range []int64{1, 2, 3} {
		c2 := New(DefaultPricing)
		c2.SetBundle(&domain.Bundle{ItemIDs: []int64{1, 2, 3}})
		for _, it := range full.Items {
			c2.Add(it)
		}
		removed := c2.Remove(id)
		assert.False(t, removed.BundleComplete, "id %d", id)
		assert.Zero(t, removed.Totals.Discount, "id %d", id)
	}
}

// Налог считается от суммы до скидки. Возможно, это не то, что задумывалось,
// но поведение сохранено намеренно.
func TestCart_TaxOnPreDiscountSubtotal(t *testing.T) {
	c := New(DefaultPricing)
	c.SetBundle(&domain.Bundle{ItemIDs: []int64{1, 2}})
	c.Add(item(1, 100))

	without := c.CalculateTotal()
	assert.InDelta(t, 18.0, without.Tax, eps)
	assert.InDelta(t, 118.0, without.Total, eps)

	with := c.Add(item(2, 100)).Totals
	assert.InDelta(t, 10.0, with.Discount, eps)
	assert.InDelta(t, 36.0, with.Tax, eps)
	assert.InDelta(t, 200*0.95*1.18, with.Total, eps)
	assert.NotEqual(t, with.Subtotal-with.Discount+with.Tax, with.Total)
}

func TestCart_BundleWithoutItemsGivesNoDiscount(t *testing.T) {
	c := New(DefaultPricing)
	c.Add(item(1, 100))

	state := c.SetBundle(&domain.Bundle{ID: "empty"})
	assert.False(t, state.BundleComplete)
	assert.Zero(t, state.Totals.Discount)
}

func TestCart_ClearAndStateIsCopy(t *testing.T) {
	c := New(DefaultPricing)
	bundle := &domain.Bundle{ItemIDs: []int64{1}}
	c.SetBundle(bundle)
	bundle.ItemIDs[0] = 99

	state := c.Add(item(1, 10))
	assert.True(t, state.BundleComplete)

	state.Items[0].Price = 1000
	assert.InDelta(t, 10.0, c.CalculateTotal().Subtotal, eps)

	cleared := c.Clear()
	assert.Empty(t, cleared.Items)
	assert.NotNil(t, cleared.Bundle)
	assert.Equal(t, Totals{}, cleared.Totals)
}
