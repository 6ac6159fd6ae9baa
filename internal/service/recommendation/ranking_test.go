package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	"github.com/m04kA/cappadocia-tours/pkg/ptr"
)

func rec(id int64, price float64, score int) domain.Recommendation {
	return domain.Recommendation{ID: id, Price: price, Score: score}
}

func TestRank_StableDescending(t *testing.T) {
	in := []domain.Recommendation{
		rec(1, 10, 80),
		rec(2, 10, 95),
		rec(3, 10, 80),
		rec(4, 10, 99),
	}

	ranked := Rank(in)
	assert.Equal(t, []int64{4, 2, 1, 3}, ids(ranked))
	// вход не меняется
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(in))
}

func TestBundles(t *testing.T) {
	t.Run("four items", func(t *testing.T) {
		ranked := []domain.Recommendation{
			rec(1, 150, 99),
			rec(2, 80, 90),
			rec(3, 60, 85),
			rec(4, 50, 80),
		}

		bundles := Bundles(ranked, "Ayşe")
		require.Len(t, bundles, 2)

		premium := bundles[0]
		assert.Equal(t, PremiumBundleID, premium.ID)
		assert.Equal(t, "Ayşe için Özel Premium Paket", premium.Name)
		assert.Equal(t, []int64{1, 2}, premium.ItemIDs)
		// 230 - floor(23)
		assert.Equal(t, float64(207), premium.Price)
		assert.Equal(t, PremiumConfidence, premium.Confidence)

		adventure := bundles[1]
		assert.Equal(t, AdventureBundleID, adventure.ID)
		assert.Equal(t, []int64{2, 3, 4}, adventure.ItemIDs)
		assert.Equal(t, float64(170), adventure.Price)
		assert.Equal(t, AdventureConfidence, adventure.Confidence)
	})

	t.Run("floor of discount", func(t *testing.T) {
		bundles := Bundles([]domain.Recommendation{rec(1, 77, 90), rec(2, 58, 80)}, "")
		require.Len(t, bundles, 1)
		// 135 - floor(13.5)
		assert.Equal(t, float64(122), bundles[0].Price)
		assert.Equal(t, "Misafirimiz için Özel Premium Paket", bundles[0].Name)
	})

	t.Run("three items", func(t *testing.T) {
		bundles := Bundles([]domain.Recommendation{rec(1, 10, 3), rec(2, 20, 2), rec(3, 30, 1)}, "Ali")
		require.Len(t, bundles, 2)
		assert.Equal(t, []int64{2, 3}, bundles[1].ItemIDs)
		assert.Equal(t, float64(30), bundles[1].Price)
	})

	t.Run("single item", func(t *testing.T) {
		bundles := Bundles([]domain.Recommendation{rec(5, 60, 70)}, "Ali")
		require.Len(t, bundles, 1)
		assert.Equal(t, SingleBundleID, bundles[0].ID)
		assert.Equal(t, "Kapadokya Keşif Paketi", bundles[0].Name)
		assert.Equal(t, []int64{5}, bundles[0].ItemIDs)
		assert.Equal(t, float64(90), bundles[0].Price)
		assert.Equal(t, SingleConfidence, bundles[0].Confidence)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Bundles(nil, "Ali"))
	})
}

func TestBundles_DistinctItemsAfterJoin(t *testing.T) {
	catalog := []*domain.Service{{ID: 5, Name: "ATV Safari", Price: 60}}
	j := NewJoiner(&fixedRand{}, nopLogger{})

	recs := j.Join([]Suggestion{
		{Name: "ATV Safari", Score: ptr.Ptr(90)},
		{Name: "atv safari", Score: ptr.Ptr(80)},
		{Name: "Kırmızı Tur", Score: ptr.Ptr(10)},
	}, catalog)

	bundles := Bundles(Rank(recs), "Ali")
	require.NotEmpty(t, bundles)

	premium := bundles[0]
	assert.Equal(t, []int64{5, SyntheticID("Kırmızı Tur")}, premium.ItemIDs)
	// 60 + 80 - floor(14)
	assert.Equal(t, float64(126), premium.Price)

	for _, b := range bundles {
		seen := make(map[int64]bool, len(b.ItemIDs))
		for _, id := range b.ItemIDs {
			assert.False(t, seen[id], "bundle %s repeats item %d", b.ID, id)
			seen[id] = true
		}
	}
}
