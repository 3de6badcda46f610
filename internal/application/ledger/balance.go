// Package ledger implementa il registro commissioni: calcolo puro dei
// saldi sullo snapshot e operazioni di movimento (payout, trasferimenti,
// bonus, rettifiche). Si scrive sul repository e si rideriva il saldo
// dallo snapshot fresco, mai si aggiorna un saldo memorizzato.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

// Balance scomposizione del saldo corrente di un utente.
type Balance struct {
	Earned            decimal.Decimal
	TransfersReceived decimal.Decimal
	TransfersSent     decimal.Decimal
	Adjustments       decimal.Decimal
	Payouts           decimal.Decimal
	PendingPayouts    decimal.Decimal
	Current           decimal.Decimal
}

// earnedByRole regola di maturazione per ruolo. Il customer care matura
// la commissione di prodotto sulle consegne che ha lavorato; affiliato e
// manager maturano la commissione delle vendite a loro attribuite.
var earnedByRole = map[entity.Role]func(snap *entity.Snapshot, userID string) decimal.Decimal{
	entity.RoleAffiliate:    earnedFromAttributedSales,
	entity.RoleManager:      earnedFromAttributedSales,
	entity.RoleCustomerCare: earnedFromCareContacts,
}

func earnedFromAttributedSales(snap *entity.Snapshot, userID string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range snap.Sales {
		if s.AffiliateID != userID {
			continue
		}
		if sales.IsApproved(s) {
			total = total.Add(s.CommissionAmount)
		}
	}
	return total
}

func earnedFromCareContacts(snap *entity.Snapshot, userID string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range snap.Sales {
		if s.LastContactedBy != userID || !sales.IsOperationalApproved(s.Status) {
			continue
		}
		// Prodotto mancante: contributo zero, mai errore.
		if p := snap.ProductByID(s.ProductID); p != nil {
			total = total.Add(p.CustomerCareCommission)
		}
	}
	return total
}

// ComputeBalance calcola il saldo di un utente. Solo le transazioni
// Completed muovono il saldo; i payout Pending sono esposti a parte per
// la verifica di disponibilità.
func ComputeBalance(snap *entity.Snapshot, user entity.User) Balance {
	var b Balance
	b.Earned = decimal.Zero
	b.TransfersReceived = decimal.Zero
	b.TransfersSent = decimal.Zero
	b.Adjustments = decimal.Zero
	b.Payouts = decimal.Zero
	b.PendingPayouts = decimal.Zero

	if earn, ok := earnedByRole[user.Role]; ok {
		b.Earned = earn(snap, user.ID)
	}

	for _, t := range snap.Transactions {
		if t.Type == entity.TransactionPayout && t.UserID == user.ID && t.Status == entity.TransactionPending {
			b.PendingPayouts = b.PendingPayouts.Add(t.Amount)
		}
		if t.Status != entity.TransactionCompleted {
			continue
		}
		switch t.Type {
		case entity.TransactionPayout:
			if t.UserID == user.ID {
				b.Payouts = b.Payouts.Add(t.Amount)
			}
		case entity.TransactionTransfer:
			if t.FromUserID == user.ID {
				b.TransfersSent = b.TransfersSent.Add(t.Amount)
			}
			if t.ToUserID == user.ID {
				b.TransfersReceived = b.TransfersReceived.Add(t.Amount)
			}
		case entity.TransactionAdjustment:
			if t.ToUserID == user.ID {
				b.Adjustments = b.Adjustments.Add(t.Amount)
			}
		}
	}

	b.Current = b.Earned.
		Add(b.TransfersReceived).
		Add(b.Adjustments).
		Sub(b.TransfersSent).
		Sub(b.Payouts)
	return b
}

// AvailableForPayout saldo prelevabile al netto dei payout già in sospeso.
func AvailableForPayout(snap *entity.Snapshot, user entity.User) decimal.Decimal {
	b := ComputeBalance(snap, user)
	return b.Current.Sub(b.PendingPayouts)
}

// ComputeBalances mappa utente -> saldo per tutti gli utenti con saldo.
// Admin e logistica non compaiono: l'admin ha saldo illimitato per
// definizione, la logistica non ha un concetto di saldo.
func ComputeBalances(snap *entity.Snapshot) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, u := range snap.Users {
		if !u.Role.HasBalance() {
			continue
		}
		out[u.ID] = ComputeBalance(snap, u).Current
	}
	return out
}
