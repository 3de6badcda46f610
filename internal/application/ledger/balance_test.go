package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func affiliate(id, name string) entity.User {
	return entity.User{ID: id, Name: name, Email: id + "@example.it", Role: entity.RoleAffiliate}
}

func TestComputeBalanceCommissioniApprovateEPending(t *testing.T) {
	a := affiliate("a1", "Luca")
	snap := &entity.Snapshot{
		Users: []entity.User{a},
		Sales: []entity.Sale{
			{ID: "s1", AffiliateID: "a1", Status: sales.StatusConsegnato, CommissionAmount: dec("10")},
			{ID: "s2", AffiliateID: "a1", Status: sales.StatusInAttesa, CommissionAmount: dec("5")},
		},
	}
	b := ComputeBalance(snap, a)
	assert.True(t, b.Earned.Equal(dec("10")), "earned %s", b.Earned)
	assert.True(t, b.Current.Equal(dec("10")), "current %s", b.Current)
}

func TestComputeBalanceConservazioneTrasferimento(t *testing.T) {
	a := affiliate("a1", "Luca")
	b := affiliate("a2", "Sara")
	base := entity.Snapshot{
		Users: []entity.User{a, b},
		Sales: []entity.Sale{
			{ID: "s1", AffiliateID: "a1", Status: sales.StatusSvincolato, CommissionAmount: dec("100")},
		},
	}
	prima := ComputeBalances(&base)

	dopoSnap := base
	dopoSnap.Transactions = []entity.Transaction{{
		ID: "t1", Type: entity.TransactionTransfer, Status: entity.TransactionCompleted,
		FromUserID: "a1", ToUserID: "a2", Amount: dec("30"),
	}}
	dopo := ComputeBalances(&dopoSnap)

	assert.True(t, dopo["a1"].Equal(prima["a1"].Sub(dec("30"))))
	assert.True(t, dopo["a2"].Equal(prima["a2"].Add(dec("30"))))
}

func TestComputeBalancePayoutPendingNonConta(t *testing.T) {
	a := affiliate("a1", "Luca")
	snap := &entity.Snapshot{
		Users: []entity.User{a},
		Sales: []entity.Sale{
			{ID: "s1", AffiliateID: "a1", Status: sales.StatusConsegnato, CommissionAmount: dec("100")},
		},
		Transactions: []entity.Transaction{{
			ID: "t1", Type: entity.TransactionPayout, Status: entity.TransactionPending,
			UserID: "a1", Amount: dec("40"),
		}},
	}
	b := ComputeBalance(snap, a)
	assert.True(t, b.Current.Equal(dec("100")))
	assert.True(t, b.PendingPayouts.Equal(dec("40")))
	assert.True(t, AvailableForPayout(snap, a).Equal(dec("60")))

	// Il completamento applica l'effetto una volta sola: il saldo deriva
	// dallo stato della transazione, non da quante volte lo si flippa.
	snap.Transactions[0].Status = entity.TransactionCompleted
	b = ComputeBalance(snap, a)
	assert.True(t, b.Current.Equal(dec("60")))
	b = ComputeBalance(snap, a)
	assert.True(t, b.Current.Equal(dec("60")))
}

func TestComputeBalanceCustomerCare(t *testing.T) {
	cc := entity.User{ID: "cc1", Name: "Elena", Role: entity.RoleCustomerCare}
	snap := &entity.Snapshot{
		Users: []entity.User{cc},
		Products: []entity.Product{
			{ID: "p1", CustomerCareCommission: dec("2.50")},
		},
		Sales: []entity.Sale{
			{ID: "s1", ProductID: "p1", LastContactedBy: "cc1", Status: sales.StatusConsegnato},
			{ID: "s2", ProductID: "p1", LastContactedBy: "cc1", Status: sales.StatusSvincolato},
			{ID: "s3", ProductID: "manca", LastContactedBy: "cc1", Status: sales.StatusConsegnato},
		},
	}
	b := ComputeBalance(snap, cc)
	// Solo la consegna col prodotto noto matura; il prodotto mancante
	// contribuisce zero senza far fallire il calcolo.
	assert.True(t, b.Current.Equal(dec("2.50")), "current %s", b.Current)
}

func TestComputeBalanceBonus(t *testing.T) {
	m := entity.User{ID: "m1", Name: "Marta", Role: entity.RoleManager}
	a := affiliate("a1", "Luca")
	snap := &entity.Snapshot{
		Users: []entity.User{m, a},
		Sales: []entity.Sale{
			{ID: "s0", AffiliateID: "m1", Status: sales.StatusConsegnato, CommissionAmount: dec("200")},
			{ID: "b1", AffiliateID: "a1", ProductID: entity.BonusProductID, Status: sales.StatusConsegnato, IsBonus: true, CommissionAmount: dec("50")},
			{ID: "b2", AffiliateID: "m1", ProductID: entity.BonusDebitProductID, Status: sales.StatusConsegnato, IsBonus: true, CommissionAmount: dec("-50")},
		},
	}
	balances := ComputeBalances(snap)
	assert.True(t, balances["a1"].Equal(dec("50")))
	assert.True(t, balances["m1"].Equal(dec("150")))
}

func TestComputeBalancesSaltaAdminELogistica(t *testing.T) {
	snap := &entity.Snapshot{Users: []entity.User{
		{ID: "ad", Role: entity.RoleAdmin},
		{ID: "lg", Role: entity.RoleLogistics},
		{ID: "a1", Role: entity.RoleAffiliate},
	}}
	balances := ComputeBalances(snap)
	require.Len(t, balances, 1)
	_, ok := balances["a1"]
	assert.True(t, ok)
}

func TestComputeBalanceDeterministico(t *testing.T) {
	a := affiliate("a1", "Luca")
	snap := &entity.Snapshot{
		Users: []entity.User{a},
		Sales: []entity.Sale{
			{ID: "s1", AffiliateID: "a1", Status: sales.StatusConsegnato, CommissionAmount: dec("10"), SaleDate: time.Now()},
		},
	}
	b1 := ComputeBalance(snap, a)
	b2 := ComputeBalance(snap, a)
	assert.True(t, b1.Current.Equal(b2.Current))
}
