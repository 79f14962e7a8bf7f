package render

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type pdfRenderer struct{}

// NewRenderer builds the maroto-backed kwitansi renderer.
func NewRenderer() Renderer {
	return &pdfRenderer{}
}

// Render implements Renderer. Layout follows the dashboard's invoice preview:
// letterhead left, KWITANSI and number right, client block, itemized rincian
// table, TOTAL row, then notes.
func (r *pdfRenderer) Render(input Input) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(14).Add(
			col.New(7).Add(
				text.New(input.Company.Name, props.Text{Size: 18, Style: fontstyle.Bold}),
				text.New(input.Company.Email, props.Text{Size: 8, Top: 9}),
			),
			col.New(5).Add(
				text.New("KWITANSI", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
				text.New("No: "+input.Invoice.Number, props.Text{Size: 8, Top: 7, Align: align.Right}),
			),
		),
		line.NewRow(4),
		row.New(16).Add(
			col.New(6).Add(
				text.New("Diterima dari", props.Text{Size: 8, Color: grey()}),
				text.New(input.Invoice.ClientName, props.Text{Size: 10, Style: fontstyle.Bold, Top: 4}),
				text.New(input.Invoice.ClientEmail, props.Text{Size: 8, Top: 9}),
			),
			col.New(6).Add(
				text.New("Tanggal: "+input.Invoice.IssueDate, props.Text{Size: 8, Align: align.Right}),
				text.New("Jatuh tempo: "+input.Invoice.DueDate, props.Text{Size: 8, Top: 4, Align: align.Right}),
				text.New("Status: "+input.Invoice.Status, props.Text{Size: 8, Top: 8, Align: align.Right}),
			),
		),
	)

	if input.Invoice.Description != "" {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New(input.Invoice.Description, props.Text{Size: 9})),
		))
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("RINCIAN", props.Text{Size: 8, Style: fontstyle.Bold, Top: 2})),
			col.New(4).Add(text.New("HARGA", props.Text{Size: 8, Style: fontstyle.Bold, Top: 2, Align: align.Right})),
		),
		line.NewRow(2),
	)

	for _, item := range input.Items {
		description := item.Description
		if description == "" {
			description = "-"
		}
		m.AddRows(row.New(7).Add(
			col.New(8).Add(text.New(description, props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(FormatRupiah(item.Price), props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}

	m.AddRows(
		line.NewRow(3),
		row.New(9).Add(
			col.New(8).Add(text.New("TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Top: 1})),
			col.New(4).Add(text.New(FormatRupiah(input.Total), props.Text{Size: 10, Style: fontstyle.Bold, Top: 1, Align: align.Right})),
		),
	)

	if input.Invoice.Notes != "" {
		m.AddRows(row.New(10).Add(
			col.New(12).Add(
				text.New("Catatan", props.Text{Size: 8, Color: grey(), Top: 2}),
				text.New(input.Invoice.Notes, props.Text{Size: 8, Top: 6}),
			),
		))
	}

	m.AddRows(row.New(10).Add(
		col.New(12).Add(
			text.New("Terima kasih atas kepercayaan Anda.", props.Text{Size: 8, Top: 4, Align: align.Center, Color: grey()}),
		),
	))

	document, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return document.GetBytes(), nil
}

func grey() *props.Color {
	return &props.Color{Red: 107, Green: 114, Blue: 128}
}
