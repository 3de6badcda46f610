// Package pdf genera la ricevuta PDF dei payout completati.
//
// Layout della pagina A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: MWS Digital  │  N° ricevuta + Data             │
//	│  ─────────────────────────────────────────────────────  │
//	│  BENEFICIARIO: Nome + Email + Ruolo                     │
//	│  ─────────────────────────────────────────────────────  │
//	│  DETTAGLI: Metodo | Coordinate | Richiesto il           │
//	│  ─────────────────────────────────────────────────────  │
//	│  IMPORTO LIQUIDATO                                      │
//	│  ─────────────────────────────────────────────────────  │
//	│  FOOTER: approvato da + leggenda                        │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 15, Green: 81, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ledger.ReceiptPDFGenerator con Maroto v2.
type MarotoReceiptGenerator struct{}

func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GeneratePayoutReceipt genera il PDF e ne restituisce i byte.
func (g *MarotoReceiptGenerator) GeneratePayoutReceipt(_ context.Context, tx *entity.Transaction, payee *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ricevuta Payout", true).
		WithAuthor("MWS Digital", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payeeRow(payee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailsRow(tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(tx))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(tx)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: genera ricevuta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: intestazione azienda (sx) e numero ricevuta + data (dx).
func headerRow(tx *entity.Transaction) core.Row {
	data := tx.CreatedAt.Format("02/01/2006")
	if tx.ResolvedAt != nil {
		data = tx.ResolvedAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("MWS Digital", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Console Operativa Affiliati", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RICEVUTA DI PAGAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(tx.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// payeeRow: dati del beneficiario.
func payeeRow(payee *entity.User) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BENEFICIARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(payee.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Ruolo: %s",
				nonEmpty(payee.Email, "—"),
				string(payee.Role),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detailsRow: metodo e coordinate di pagamento.
func detailsRow(tx *entity.Transaction) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DETTAGLI PAGAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Metodo: %s   |   Coordinate: %s",
				nonEmpty(tx.PaymentMethod, "—"),
				nonEmpty(tx.PaymentDetails, "—"),
			), props.Text{Size: 9, Top: 7}),
			text.New("Richiesto il: "+tx.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// amountRow: importo liquidato in evidenza.
func amountRow(tx *entity.Transaction) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("IMPORTO LIQUIDATO", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 5,
			}),
		),
		col.New(6).Add(
			text.New("€ "+tx.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 4,
			}),
		),
	)
}

// footerRows: chi ha approvato + leggenda.
func footerRows(tx *entity.Transaction) []core.Row {
	rows := []core.Row{}
	if tx.ResolvedBy != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Approvato da: "+tx.ResolvedBy, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Questa ricevuta attesta la liquidazione delle commissioni maturate "+
				"sulla piattaforma. Conservare come giustificativo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
