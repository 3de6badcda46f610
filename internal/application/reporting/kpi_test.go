package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func allTime() Window {
	return Window{time.Time{}, time.Date(2100, 1, 1, 0, 0, 0, 0, time.Local)}
}

func day(d int) time.Time {
	return time.Date(2026, 4, d, 10, 0, 0, 0, time.Local)
}

func testSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Products: []entity.Product{{
			ID:                     "p1",
			Name:                   "Crema Viso",
			Price:                  dec("49.90"),
			ProductCost:            dec("8"),
			ShippingCost:           dec("5"),
			FulfillmentCost:        dec("2"),
			CustomerCareCommission: dec("1.50"),
			PlatformFee:            dec("4"),
		}},
		Sales: []entity.Sale{
			{ID: "s1", ProductID: "p1", ProductName: "Crema Viso", AffiliateID: "a1", AffiliateName: "Luca",
				Status: sales.StatusConsegnato, SaleAmount: dec("49.90"), CommissionAmount: dec("10"),
				Quantity: 1, SaleDate: day(1), LastContactedBy: "cc1"},
			{ID: "s2", ProductID: "p1", ProductName: "Crema Viso", AffiliateID: "a1", AffiliateName: "Luca",
				Status: sales.StatusInAttesa, SaleAmount: dec("49.90"), CommissionAmount: dec("5"),
				Quantity: 1, SaleDate: day(2)},
			{ID: "s3", ProductID: "p1", ProductName: "Crema Viso", AffiliateID: "a2", AffiliateName: "Sara",
				Status: sales.StatusAnnullato, SaleAmount: dec("49.90"), CommissionAmount: dec("10"),
				Quantity: 1, SaleDate: day(3)},
			{ID: "s4", ProductID: "p1", ProductName: "Crema Viso", AffiliateID: "a2", AffiliateName: "Sara",
				Status: sales.StatusSvincolato, SaleAmount: dec("49.90"), CommissionAmount: dec("10"),
				Quantity: 2, SaleDate: day(4)},
			{ID: "s5", ProductID: "p1", ProductName: "Crema Viso", AffiliateID: "a1", AffiliateName: "Luca",
				Status: sales.StatusTest, SaleAmount: dec("49.90"), CommissionAmount: dec("10"),
				Quantity: 1, SaleDate: day(5)},
		},
	}
}

func TestBuildReportAffiliato(t *testing.T) {
	r := BuildReport(testSnapshot(), Filter{Role: entity.RoleAffiliate, UserID: "a1", Window: allTime()})
	assert.True(t, r.ApprovedCommissions.Equal(dec("10")), "approvate %s", r.ApprovedCommissions)
	assert.True(t, r.PendingCommissions.Equal(dec("5")))
	// Solo s1 e s2: la Test è esclusa a monte, le vendite di a2 non si vedono.
	assert.Equal(t, 2, r.TotalSalesCount)
	assert.InDelta(t, 50.0, r.ApprovalRate, 0.001)
}

func TestBuildReportCustomerCare(t *testing.T) {
	r := BuildReport(testSnapshot(), Filter{Role: entity.RoleCustomerCare, UserID: "cc1", Window: allTime()})
	// s1 consegnata: 1.50 confermata; s2 In attesa e s4 Svincolato... lo
	// Svincolato non è nella coda care, quindi pending solo da s2.
	assert.True(t, r.ConfirmedCareCommissions.Equal(dec("1.50")))
	assert.True(t, r.PendingCareCommissions.Equal(dec("1.50")))
	assert.Equal(t, 1, r.OrdersHandled)
}

func TestBuildReportCustomerCareConversione(t *testing.T) {
	snap := &entity.Snapshot{Sales: []entity.Sale{
		{ID: "s1", Status: sales.StatusConfermato, LastContactedBy: "cc1", SaleDate: day(1)},
		{ID: "s2", Status: sales.StatusConfermato, LastContactedBy: "cc1", SaleDate: day(2)},
		{ID: "s3", Status: sales.StatusCancellato, LastContactedBy: "cc1", SaleDate: day(3)},
		{ID: "s4", Status: sales.StatusConfermato, LastContactedBy: "altro", SaleDate: day(4)},
	}}
	r := BuildReport(snap, Filter{Role: entity.RoleCustomerCare, UserID: "cc1", Window: allTime()})
	assert.Equal(t, 3, r.OrdersHandled)
	assert.InDelta(t, 66.666, r.ConversionRate, 0.01)
}

func TestBuildReportPiattaforma(t *testing.T) {
	r := BuildReport(testSnapshot(), Filter{Role: entity.RoleAdmin, Window: allTime()})

	// Confermate: s1 (Consegnato) e s4 (Svincolato).
	assert.True(t, r.ConfirmedRevenue.Equal(dec("99.80")), "revenue %s", r.ConfirmedRevenue)
	assert.True(t, r.PendingRevenue.Equal(dec("49.90")))
	assert.True(t, r.ConfirmedAffiliateCommissions.Equal(dec("20")))
	assert.True(t, r.PendingAffiliateCommissions.Equal(dec("5")))

	// Commissioni operative confermate solo sulla consegna di s1.
	assert.True(t, r.ConfirmedLogisticsCommissions.Equal(dec("2")))
	assert.True(t, r.ConfirmedCareCommissions.Equal(dec("1.50")))
	// Svincolato (s4) e In attesa (s2) le tengono in sospeso.
	assert.True(t, r.PendingLogisticsCommissions.Equal(dec("4")))

	// Costi: s1 (8+5)*1 + s4 (8+5)*2 + operative di s1 (2+1.50) = 42.50.
	assert.True(t, r.ConfirmedCosts.Equal(dec("42.50")), "costi %s", r.ConfirmedCosts)
	// Netto: 99.80 - 42.50 - 20 = 37.30.
	assert.True(t, r.NetProfit.Equal(dec("37.30")), "netto %s", r.NetProfit)

	assert.True(t, r.ConfirmedPlatformProfit.Equal(dec("4")))
	assert.Equal(t, 3, r.TotalSalesCount) // s3 annullata e s5 test fuori
	assert.InDelta(t, 33.333, r.ApprovalRate, 0.01)
}

func TestBuildReportLogisticaSenzaProfitto(t *testing.T) {
	r := BuildReport(testSnapshot(), Filter{Role: entity.RoleLogistics, Window: allTime()})
	assert.True(t, r.NetProfit.IsZero())
	assert.True(t, r.ConfirmedPlatformProfit.IsZero())
	assert.True(t, r.ConfirmedLogisticsCommissions.Equal(dec("2")))
}

func TestBuildReportCostoPiattaformaSovrascrive(t *testing.T) {
	snap := testSnapshot()
	snap.StockExpenses = []entity.StockExpense{
		{ID: "e1", ProductID: "p1", Payer: entity.PayerPlatform, UnitCost: dec("6"), PurchaseDate: day(1)},
		{ID: "e2", ProductID: "p1", Payer: entity.PayerPlatform, UnitCost: dec("7"), PurchaseDate: day(3)},
		{ID: "e3", ProductID: "p1", Payer: entity.PayerSupplier, UnitCost: dec("1"), PurchaseDate: day(4)},
	}
	r := BuildReport(snap, Filter{Role: entity.RoleAdmin, Window: allTime()})
	// Vince la spesa PLATFORM più recente (7), non quella del fornitore.
	// Costi: s1 (7+5)*1 + s4 (7+5)*2 + (2+1.50) = 39.50.
	assert.True(t, r.ConfirmedCosts.Equal(dec("39.50")), "costi %s", r.ConfirmedCosts)
}

func TestBuildReportProdottoMancanteDegradaAZero(t *testing.T) {
	snap := &entity.Snapshot{Sales: []entity.Sale{
		{ID: "s1", ProductID: "sparito", Status: sales.StatusConsegnato,
			SaleAmount: dec("10"), CommissionAmount: dec("2"), SaleDate: day(1)},
	}}
	r := BuildReport(snap, Filter{Role: entity.RoleAdmin, Window: allTime()})
	// Nessun panico e nessun contributo oltre il conteggio.
	assert.Equal(t, 1, r.TotalSalesCount)
	assert.True(t, r.ConfirmedRevenue.IsZero())
}

func TestFilterSalesSubIDeProdotto(t *testing.T) {
	snap := testSnapshot()
	snap.Sales[0].SubID = "FB-Campagna-Aprile"
	got := FilterSales(snap, Filter{Role: entity.RoleAdmin, Window: allTime(), SubID: "campagna"})
	assert.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(testSnapshot(), allTime())
	assert.Equal(t, 1, counts[sales.StatusConsegnato])
	assert.Equal(t, 1, counts[sales.StatusAnnullato])
	assert.Equal(t, 1, counts[sales.StatusTest]) // qui la Test si conta
}
