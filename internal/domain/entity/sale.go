package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Identificatori prodotto riservati alle vendite sintetiche di bonus.
// Non corrispondono a prodotti di catalogo e non generano mai fatturato.
const (
	BonusProductID      = "BONUS-MANUALE"
	BonusDebitProductID = "BONUS-DEBIT"
)

// ContactHistoryItem voce del log contatti di una vendita (append-only).
type ContactHistoryItem struct {
	ID        string
	UserID    string
	UserName  string
	Channel   string // es. "whatsapp", "telefono", "email"
	Note      string
	CreatedAt time.Time
}

// Sale un ordine cliente. Creata alla submission dell'ordine (esterna),
// mutata solo via transizioni di stato e aggiornamenti di contatto/note;
// SaleDate è immutabile dopo la creazione.
type Sale struct {
	ID            string
	ProductID     string
	ProductName   string
	AffiliateID   string
	AffiliateName string
	BundleID      string // vuoto se vendita singola
	VariantID     string // vuoto se prodotto senza varianti

	SaleAmount       decimal.Decimal // totale addebitato al cliente
	CommissionAmount decimal.Decimal // quota dell'affiliato
	Quantity         int             // >= 1

	Status              string // vedi package sales: enumerazione chiusa
	StatusUpdatedAt     *time.Time
	LastContactedBy     string // vuoto se mai contattato (o attore Logistics)
	LastContactedByName string

	// IsBonus marca le vendite sintetiche usate per la contabilità manuale
	// di bonus/addebiti: mai fatturato, mai controllo duplicati.
	IsBonus bool

	CustomerName          string
	CustomerPhone         string
	CustomerEmail         string
	CustomerStreetAddress string
	CustomerHouseNumber   string
	CustomerCity          string
	CustomerProvince      string
	CustomerZip           string

	SubID          string // tag sorgente traffico (es. nome campagna)
	TrackingCode   string
	Notes          string
	ContactHistory []ContactHistoryItem

	SaleDate time.Time
}
