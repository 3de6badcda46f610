package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chi ha sostenuto la spesa di stock.
const (
	PayerPlatform = "PLATFORM" // la piattaforma: il costo unitario sovrascrive il catalogo
	PayerSupplier = "SUPPLIER"
)

// StockExpense acquisto di stock. Quando Payer è PLATFORM, UnitCost della
// spesa più recente per prodotto sostituisce il ProductCost di catalogo
// nel calcolo dei costi di piattaforma.
type StockExpense struct {
	ID           string
	ProductID    string
	Description  string
	Payer        string
	Quantity     int
	UnitCost     decimal.Decimal
	TotalCost    decimal.Decimal
	PurchaseDate time.Time
	CreatedAt    time.Time
}
