package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

// AffiliateRow riga della leaderboard affiliati.
type AffiliateRow struct {
	AffiliateID         string
	Name                string
	TotalRevenue        decimal.Decimal
	TotalSalesCount     int
	ApprovedCommissions decimal.Decimal
	PendingCommissions  decimal.Decimal
}

// Colonne di ordinamento della leaderboard.
const (
	SortByName                = "name"
	SortByRevenue             = "total_revenue"
	SortBySalesCount          = "total_sales_count"
	SortByApprovedCommissions = "approved_commissions"
	SortByPendingCommissions  = "pending_commissions"
)

// Leaderboard raggruppa le vendite filtrate per affiliato. Riservata
// alle viste admin e manager; l'ordinamento è stabile, a parità di
// valore vince l'ordine di prima apparizione.
func Leaderboard(snap *entity.Snapshot, f Filter, sortBy string, descending bool) []AffiliateRow {
	if f.Role != entity.RoleAdmin && f.Role != entity.RoleManager {
		return nil
	}
	filtered := FilterSales(snap, f)

	byID := make(map[string]*AffiliateRow)
	var order []string
	for _, s := range filtered {
		row, ok := byID[s.AffiliateID]
		if !ok {
			row = &AffiliateRow{
				AffiliateID:         s.AffiliateID,
				Name:                s.AffiliateName,
				TotalRevenue:        decimal.Zero,
				ApprovedCommissions: decimal.Zero,
				PendingCommissions:  decimal.Zero,
			}
			byID[s.AffiliateID] = row
			order = append(order, s.AffiliateID)
		}

		if sales.IsCountable(s.Status) {
			row.TotalSalesCount++
		}
		if !sales.IsNonRevenue(s.Status) {
			row.TotalRevenue = row.TotalRevenue.Add(s.SaleAmount)
		}
		if sales.IsApproved(s) {
			row.ApprovedCommissions = row.ApprovedCommissions.Add(s.CommissionAmount)
		} else if sales.IsPending(s) {
			row.PendingCommissions = row.PendingCommissions.Add(s.CommissionAmount)
		}
	}

	rows := make([]AffiliateRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byID[id])
	}

	less := leaderboardLess(sortBy)
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	return rows
}

func leaderboardLess(sortBy string) func(a, b AffiliateRow) bool {
	switch sortBy {
	case SortByName:
		return func(a, b AffiliateRow) bool { return a.Name < b.Name }
	case SortBySalesCount:
		return func(a, b AffiliateRow) bool { return a.TotalSalesCount < b.TotalSalesCount }
	case SortByApprovedCommissions:
		return func(a, b AffiliateRow) bool { return a.ApprovedCommissions.LessThan(b.ApprovedCommissions) }
	case SortByPendingCommissions:
		return func(a, b AffiliateRow) bool { return a.PendingCommissions.LessThan(b.PendingCommissions) }
	default:
		return func(a, b AffiliateRow) bool { return a.TotalRevenue.LessThan(b.TotalRevenue) }
	}
}
