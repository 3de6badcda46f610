package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

func leaderboardSnapshot() *entity.Snapshot {
	return &entity.Snapshot{Sales: []entity.Sale{
		{ID: "s1", AffiliateID: "a1", AffiliateName: "Luca", Status: sales.StatusConsegnato,
			SaleAmount: dec("100"), CommissionAmount: dec("20"), SaleDate: day(1)},
		{ID: "s2", AffiliateID: "a1", AffiliateName: "Luca", Status: sales.StatusInAttesa,
			SaleAmount: dec("50"), CommissionAmount: dec("10"), SaleDate: day(2)},
		{ID: "s3", AffiliateID: "a2", AffiliateName: "Sara", Status: sales.StatusSvincolato,
			SaleAmount: dec("200"), CommissionAmount: dec("40"), SaleDate: day(3)},
		{ID: "s4", AffiliateID: "a2", AffiliateName: "Sara", Status: sales.StatusDuplicato,
			SaleAmount: dec("200"), CommissionAmount: dec("40"), SaleDate: day(4)},
	}}
}

func TestLeaderboardAggregati(t *testing.T) {
	rows := Leaderboard(leaderboardSnapshot(), Filter{Role: entity.RoleAdmin, Window: allTime()}, SortByRevenue, true)
	require.Len(t, rows, 2)

	assert.Equal(t, "a2", rows[0].AffiliateID)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("200"))) // la duplicata non fattura
	assert.Equal(t, 1, rows[0].TotalSalesCount)            // e non si conta
	assert.True(t, rows[0].ApprovedCommissions.Equal(dec("40")))

	assert.Equal(t, "a1", rows[1].AffiliateID)
	assert.True(t, rows[1].TotalRevenue.Equal(dec("150")))
	assert.Equal(t, 2, rows[1].TotalSalesCount)
	assert.True(t, rows[1].ApprovedCommissions.Equal(dec("20")))
	assert.True(t, rows[1].PendingCommissions.Equal(dec("10")))
}

func TestLeaderboardOrdinamentoColonne(t *testing.T) {
	rows := Leaderboard(leaderboardSnapshot(), Filter{Role: entity.RoleManager, Window: allTime()}, SortBySalesCount, false)
	require.Len(t, rows, 2)
	assert.Equal(t, "a2", rows[0].AffiliateID) // 1 vendita contro 2, ascendente

	rows = Leaderboard(leaderboardSnapshot(), Filter{Role: entity.RoleManager, Window: allTime()}, SortByName, false)
	assert.Equal(t, "Luca", rows[0].Name)
}

func TestLeaderboardStabileAPartita(t *testing.T) {
	snap := &entity.Snapshot{Sales: []entity.Sale{
		{ID: "s1", AffiliateID: "a1", AffiliateName: "Luca", Status: sales.StatusConsegnato,
			SaleAmount: dec("100"), SaleDate: day(1)},
		{ID: "s2", AffiliateID: "a2", AffiliateName: "Sara", Status: sales.StatusConsegnato,
			SaleAmount: dec("100"), SaleDate: day(2)},
	}}
	rows := Leaderboard(snap, Filter{Role: entity.RoleAdmin, Window: allTime()}, SortByRevenue, true)
	require.Len(t, rows, 2)
	// A parità di fatturato vince chi è apparso prima.
	assert.Equal(t, "a1", rows[0].AffiliateID)
}

func TestLeaderboardSoloStaffDirettivo(t *testing.T) {
	rows := Leaderboard(leaderboardSnapshot(), Filter{Role: entity.RoleAffiliate, UserID: "a1", Window: allTime()}, SortByRevenue, true)
	assert.Nil(t, rows)
}
