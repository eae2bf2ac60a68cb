// Package render is the display side of the register: it turns a purse into
// something a person can read.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"making-change/domain"
)

type Renderer interface {
	Render(purse *domain.Purse) error
}

// RenderFunc adapts a plain callback to Renderer.
type RenderFunc func(purse *domain.Purse) error

func (f RenderFunc) Render(purse *domain.Purse) error { return f(purse) }

// TextRenderer prints one row per denomination: name, count, value and icon.
type TextRenderer struct {
	Out    io.Writer
	Symbol string
	Icons  *IconResolver
}

func NewTextRenderer(out io.Writer, symbol string, icons *IconResolver) *TextRenderer {
	if symbol == "" {
		symbol = domain.DefaultCurrencySymbol
	}
	return &TextRenderer{Out: out, Symbol: symbol, Icons: icons}
}

func (r *TextRenderer) Render(purse *domain.Purse) error {
	if purse == nil || purse.IsEmpty() {
		_, err := fmt.Fprintf(r.Out, "(no change)\nTotal: %s\n", domain.FormatAmount(0, r.Symbol))
		return err
	}

	tw := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	for _, h := range purse.Holdings() {
		icon, ok := r.Icons.Resolve(h.Denomination)
		if !ok {
			icon = "-"
		}
		fmt.Fprintf(tw, "%s\tx%d\t%s\t%s\n", h.Denomination.Name, h.Count, domain.FormatAmount(h.Value(), r.Symbol), icon)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.Out, "Total: %s\n", domain.FormatAmount(purse.TotalValue(), r.Symbol))
	return err
}
