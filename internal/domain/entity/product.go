package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BundleOption offerta multi-pezzo di un prodotto (es. 2x, 3x), con
// commissione e fee di piattaforma proprie.
type BundleOption struct {
	ID          string
	Quantity    int
	Price       decimal.Decimal
	Commission  decimal.Decimal
	PlatformFee decimal.Decimal
}

// Variant variante di prodotto (colore, taglia) con stock dedicato.
type Variant struct {
	ID    string
	Name  string
	Stock int
}

// Product articolo di catalogo. ProductCost e ShippingCost alimentano il
// profitto netto; FulfillmentCost è la commissione logistica per ordine e
// CustomerCareCommission quanto matura l'operatore che porta la vendita a
// Consegnato; PlatformFee è il margine trattenuto dalla piattaforma.
type Product struct {
	ID          string
	Name        string
	Description string
	ImageURL    string

	Price      decimal.Decimal
	Commission decimal.Decimal

	ProductCost            decimal.Decimal
	ShippingCost           decimal.Decimal
	FulfillmentCost        decimal.Decimal
	CustomerCareCommission decimal.Decimal
	PlatformFee            decimal.Decimal

	Stock    int
	IsActive bool

	Bundles  []BundleOption
	Variants []Variant

	CreatedAt time.Time
	UpdatedAt time.Time
}
