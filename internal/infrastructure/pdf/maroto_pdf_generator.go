// Package pdf genera el estado de cuenta de un tercero en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del tercero + contacto │ Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Origen | Descripción | Efecto | Saldo        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Materiales / Financiero / Libros / Saldo en caché  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
)

var _ accounting.StatementPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa accounting.StatementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador con formato numérico en español.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		printer: message.NewPrinter(language.Spanish),
		now:     time.Now,
	}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatementPDF(
	_ context.Context,
	party *entity.Party,
	entries []ledger.StatementEntry,
	summary ledger.Summary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		WithAuthor(party.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(party))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, e := range entries {
		m.AddRows(g.entryRow(e))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.summaryRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tercero y contacto (izq), fecha de emisión (der).
func (g *MarotoPDFGenerator) headerRow(party *entity.Party) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(party.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Contacto: "+nonEmpty(party.Contact, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Origen", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Efecto", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) entryRow(e ledger.StatementEntry) core.Row {
	effect := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if e.Effect.IsNegative() {
		effect.Color = colorRed
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(e.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(sourceLabel(e.Source), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(e.Description, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(g.money(e.Effect), effect)),
		col.New(2).Add(text.New(g.money(e.Running), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// summaryRow: totales de los libros frente al saldo en caché.
func (g *MarotoPDFGenerator) summaryRow(s ledger.Summary) core.Row {
	label := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	status := "Saldo conciliado con los libros"
	statusColor := colorPrimary
	if !s.Consistent {
		status = "ATENCIÓN: el saldo no coincide con los libros"
		statusColor = colorRed
	}
	return row.New(30).Add(
		col.New(4).Add(text.New(status, props.Text{Style: fontstyle.Bold, Size: 8, Color: statusColor, Top: 20})),
		col.New(4).Add(
			label("Materiales:", 2),
			label("Financiero:", 8),
			label("Total libros:", 14),
			label("Saldo:", 20),
		),
		col.New(4).Add(
			value(g.money(s.MaterialTotal), 2),
			value(g.money(s.FinancialTotal), 8),
			value(g.money(s.LedgerTotal), 14),
			text.New(g.money(s.Balance), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 20, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles según el locale del printer.
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func sourceLabel(source string) string {
	switch source {
	case ledger.SourceMaterial:
		return "Pedido"
	case ledger.SourceFinancial:
		return "Pago/recibo"
	default:
		return source
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
