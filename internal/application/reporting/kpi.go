package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

// Report KPI di periodo. I campi valorizzati dipendono dal ruolo del
// richiedente; gli altri restano a zero.
type Report struct {
	TotalSalesCount int
	ApprovalRate    float64 // consegnate / valide, in percento

	// Vista affiliato.
	ApprovedCommissions decimal.Decimal
	PendingCommissions  decimal.Decimal

	// Vista customer care.
	ConfirmedCareCommissions decimal.Decimal
	PendingCareCommissions   decimal.Decimal
	OrdersHandled            int
	ConversionRate           float64 // confermate / (confermate + cancellate)

	// Viste piattaforma (admin, manager, logistica).
	ConfirmedRevenue              decimal.Decimal
	PendingRevenue                decimal.Decimal
	ConfirmedCosts                decimal.Decimal
	ConfirmedAffiliateCommissions decimal.Decimal
	PendingAffiliateCommissions   decimal.Decimal
	ConfirmedLogisticsCommissions decimal.Decimal
	PendingLogisticsCommissions   decimal.Decimal
	ConfirmedPlatformProfit       decimal.Decimal
	PendingPlatformProfit         decimal.Decimal
	NetProfit                     decimal.Decimal
}

// Costruttori di report per ruolo: tabella statica, niente branching
// sparso sul ruolo dentro l'aggregazione.
var buildByRole = map[entity.Role]func(snap *entity.Snapshot, f Filter, filtered []entity.Sale) Report{
	entity.RoleAffiliate:    buildAffiliateReport,
	entity.RoleCustomerCare: buildCareReport,
	entity.RoleLogistics:    buildPlatformReport,
	entity.RoleManager:      buildPlatformReport,
	entity.RoleAdmin:        buildPlatformReport,
}

// BuildReport produce il KPI set del ruolo sul filtro dato. Funzione
// pura e totale: input ben tipato ma incoerente degrada a zero.
func BuildReport(snap *entity.Snapshot, f Filter) Report {
	filtered := FilterSales(snap, f)
	build, ok := buildByRole[f.Role]
	if !ok {
		return zeroReport()
	}
	return build(snap, f, filtered)
}

func zeroReport() Report {
	return Report{
		ApprovedCommissions:           decimal.Zero,
		PendingCommissions:            decimal.Zero,
		ConfirmedCareCommissions:      decimal.Zero,
		PendingCareCommissions:        decimal.Zero,
		ConfirmedRevenue:              decimal.Zero,
		PendingRevenue:                decimal.Zero,
		ConfirmedCosts:                decimal.Zero,
		ConfirmedAffiliateCommissions: decimal.Zero,
		PendingAffiliateCommissions:   decimal.Zero,
		ConfirmedLogisticsCommissions: decimal.Zero,
		PendingLogisticsCommissions:   decimal.Zero,
		ConfirmedPlatformProfit:       decimal.Zero,
		PendingPlatformProfit:         decimal.Zero,
		NetProfit:                     decimal.Zero,
	}
}

func buildAffiliateReport(_ *entity.Snapshot, _ Filter, filtered []entity.Sale) Report {
	r := zeroReport()
	delivered, valid := 0, 0
	for _, s := range filtered {
		if sales.IsApproved(s) {
			r.ApprovedCommissions = r.ApprovedCommissions.Add(s.CommissionAmount)
		} else if sales.IsPending(s) {
			r.PendingCommissions = r.PendingCommissions.Add(s.CommissionAmount)
		}
		if sales.IsCountable(s.Status) {
			valid++
			if s.Status == sales.StatusConsegnato {
				delivered++
			}
		}
	}
	r.TotalSalesCount = valid
	if valid > 0 {
		r.ApprovalRate = float64(delivered) / float64(valid) * 100
	}
	return r
}

func buildCareReport(snap *entity.Snapshot, f Filter, filtered []entity.Sale) Report {
	r := zeroReport()
	confirmed, cancelled := 0, 0
	for _, s := range filtered {
		p := snap.ProductByID(s.ProductID)
		if p != nil {
			if sales.IsOperationalApproved(s.Status) {
				r.ConfirmedCareCommissions = r.ConfirmedCareCommissions.Add(p.CustomerCareCommission)
			} else if sales.IsCustomerCarePending(s.Status) {
				r.PendingCareCommissions = r.PendingCareCommissions.Add(p.CustomerCareCommission)
			}
		}
		if s.LastContactedBy != f.UserID {
			continue
		}
		r.OrdersHandled++
		switch s.Status {
		case sales.StatusConfermato:
			confirmed++
		case sales.StatusCancellato:
			cancelled++
		}
	}
	if confirmed+cancelled > 0 {
		r.ConversionRate = float64(confirmed) / float64(confirmed+cancelled) * 100
	}
	return r
}

// platformUnitCosts costo unitario più recente pagato dalla piattaforma
// per prodotto. Sovrascrive il ProductCost di catalogo nei KPI.
func platformUnitCosts(snap *entity.Snapshot) map[string]decimal.Decimal {
	expenses := make([]entity.StockExpense, 0, len(snap.StockExpenses))
	for _, e := range snap.StockExpenses {
		if e.Payer == entity.PayerPlatform {
			expenses = append(expenses, e)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].PurchaseDate.After(expenses[j].PurchaseDate)
	})
	costs := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if _, ok := costs[e.ProductID]; !ok {
			costs[e.ProductID] = e.UnitCost
		}
	}
	return costs
}

func buildPlatformReport(snap *entity.Snapshot, f Filter, filtered []entity.Sale) Report {
	r := zeroReport()
	withProfit := f.Role == entity.RoleAdmin || f.Role == entity.RoleManager

	var unitCosts map[string]decimal.Decimal
	if withProfit {
		unitCosts = platformUnitCosts(snap)
	}

	delivered := 0
	for _, s := range filtered {
		if sales.IsNonRevenue(s.Status) {
			continue
		}
		r.TotalSalesCount++
		if s.Status == sales.StatusConsegnato {
			delivered++
		}

		p := snap.ProductByID(s.ProductID)
		if p == nil {
			continue // riferimento assente: contributo zero
		}

		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		platformFee := p.PlatformFee
		for _, b := range p.Bundles {
			if b.ID == s.BundleID && s.BundleID != "" {
				platformFee = b.PlatformFee
			}
		}
		costOfGoods := p.ProductCost
		if c, ok := unitCosts[s.ProductID]; ok {
			costOfGoods = c
		}
		baseCost := costOfGoods.Add(p.ShippingCost).Mul(decimal.NewFromInt(int64(qty)))

		if sales.IsApproved(s) {
			r.ConfirmedAffiliateCommissions = r.ConfirmedAffiliateCommissions.Add(s.CommissionAmount)
		} else if sales.IsPending(s) {
			r.PendingAffiliateCommissions = r.PendingAffiliateCommissions.Add(s.CommissionAmount)
		}

		if s.IsBonus {
			continue // le vendite bonus non muovono fatturato né costi
		}

		switch {
		case sales.IsApproved(s):
			r.ConfirmedRevenue = r.ConfirmedRevenue.Add(s.SaleAmount)
			r.ConfirmedCosts = r.ConfirmedCosts.Add(baseCost)
			if sales.IsOperationalApproved(s.Status) {
				r.ConfirmedLogisticsCommissions = r.ConfirmedLogisticsCommissions.Add(p.FulfillmentCost)
				r.ConfirmedCareCommissions = r.ConfirmedCareCommissions.Add(p.CustomerCareCommission)
				r.ConfirmedCosts = r.ConfirmedCosts.Add(p.FulfillmentCost).Add(p.CustomerCareCommission)
				if withProfit {
					r.ConfirmedPlatformProfit = r.ConfirmedPlatformProfit.Add(platformFee)
				}
			} else {
				// Svincolato: fatturato confermato, commissioni operative
				// ancora in sospeso fino alla consegna.
				r.PendingLogisticsCommissions = r.PendingLogisticsCommissions.Add(p.FulfillmentCost)
				r.PendingCareCommissions = r.PendingCareCommissions.Add(p.CustomerCareCommission)
				if withProfit {
					r.PendingPlatformProfit = r.PendingPlatformProfit.Add(platformFee)
				}
			}
		case sales.IsPending(s):
			r.PendingRevenue = r.PendingRevenue.Add(s.SaleAmount)
			r.PendingLogisticsCommissions = r.PendingLogisticsCommissions.Add(p.FulfillmentCost)
			r.PendingCareCommissions = r.PendingCareCommissions.Add(p.CustomerCareCommission)
			if withProfit {
				r.PendingPlatformProfit = r.PendingPlatformProfit.Add(platformFee)
			}
		}
	}

	if r.TotalSalesCount > 0 {
		r.ApprovalRate = float64(delivered) / float64(r.TotalSalesCount) * 100
	}
	if withProfit {
		r.NetProfit = r.ConfirmedRevenue.
			Sub(r.ConfirmedCosts).
			Sub(r.ConfirmedAffiliateCommissions)
	}
	return r
}
