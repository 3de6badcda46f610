package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

// ProductStat aggregato per prodotto nella classifica.
type ProductStat struct {
	ProductID      string
	Name           string
	ImageURL       string
	Count          int
	Quantity       int
	Revenue        decimal.Decimal
	Commission     decimal.Decimal
	CareCommission decimal.Decimal
}

// Metrica di ordinamento per ruolo: l'affiliato classifica per propria
// commissione, il customer care per commissione di assistenza, la
// logistica per ordini lavorati, admin e manager per fatturato.
var rankMetric = map[entity.Role]func(p ProductStat) decimal.Decimal{
	entity.RoleAffiliate:    func(p ProductStat) decimal.Decimal { return p.Commission },
	entity.RoleCustomerCare: func(p ProductStat) decimal.Decimal { return p.CareCommission },
	entity.RoleLogistics:    func(p ProductStat) decimal.Decimal { return decimal.NewFromInt(int64(p.Count)) },
	entity.RoleManager:      func(p ProductStat) decimal.Decimal { return p.Revenue },
	entity.RoleAdmin:        func(p ProductStat) decimal.Decimal { return p.Revenue },
}

// TopProducts classifica i prodotti nel filtro dato, ordinati per la
// metrica del ruolo in senso decrescente con ordinamento stabile. limit
// <= 0 non tronca la lista. La logistica conta tutte le vendite
// lavorate; gli altri ruoli escludono gli stati senza fatturato.
func TopProducts(snap *entity.Snapshot, f Filter, limit int) []ProductStat {
	filtered := FilterSales(snap, f)

	byID := make(map[string]*ProductStat)
	var order []string
	for _, s := range filtered {
		if f.Role != entity.RoleLogistics && sales.IsNonRevenue(s.Status) {
			continue
		}
		stat, ok := byID[s.ProductID]
		if !ok {
			stat = &ProductStat{
				ProductID:      s.ProductID,
				Name:           s.ProductName,
				Revenue:        decimal.Zero,
				Commission:     decimal.Zero,
				CareCommission: decimal.Zero,
			}
			if p := snap.ProductByID(s.ProductID); p != nil {
				stat.ImageURL = p.ImageURL
			}
			byID[s.ProductID] = stat
			order = append(order, s.ProductID)
		}

		stat.Count++
		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		stat.Quantity += qty
		stat.Revenue = stat.Revenue.Add(s.SaleAmount)
		stat.Commission = stat.Commission.Add(s.CommissionAmount)
		if p := snap.ProductByID(s.ProductID); p != nil {
			stat.CareCommission = stat.CareCommission.Add(p.CustomerCareCommission)
		}
	}

	out := make([]ProductStat, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}

	metric := rankMetric[f.Role]
	if metric == nil {
		metric = rankMetric[entity.RoleAdmin]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return metric(out[i]).GreaterThan(metric(out[j]))
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
