package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo di movimento del registro commissioni.
const (
	TransactionPayout     = "Payout"     // prelievo richiesto dal titolare
	TransactionTransfer   = "Transfer"   // trasferimento saldo tra utenti
	TransactionAdjustment = "Adjustment" // rettifica amministrativa (segno libero)
)

// Stati del ciclo di vita di una transazione.
const (
	TransactionPending   = "Pending"
	TransactionCompleted = "Completed"
	TransactionFailed    = "Failed"
)

// Transaction movimento del registro. Per i payout UserID è il
// richiedente; per i trasferimenti contano FromUserID e ToUserID; per le
// rettifiche solo ToUserID.
type Transaction struct {
	ID     string
	Type   string
	Status string

	UserID       string // richiedente del payout, o attore che ha creato il movimento
	FromUserID   string
	FromUserName string
	ToUserID     string
	ToUserName   string

	Amount decimal.Decimal // sempre > 0; il verso lo decidono tipo e campi utente

	PaymentMethod  string // payout: "PayPal", "Bonifico Bancario", "Worldfili"
	PaymentDetails string // payout: IBAN o indirizzo del conto
	Notes          string

	CreatedAt  time.Time
	ResolvedAt *time.Time // valorizzato a completamento o fallimento
	ResolvedBy string
}
