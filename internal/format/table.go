// Package format renders launch pages as terminal or Markdown tables for
// the non-interactive list command.
package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal table
	Markdown             // GitHub-flavoured Markdown table
)

// ParseMode accepts "ascii", "table", "markdown" or "md".
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ascii", "table":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown format %q (want ascii or markdown)", value)
	}
}

// Column configures one 1-based column.
type Column struct {
	Number     int
	AlignRight bool
	MaxWidth   int // 0 = unlimited
}

// Table is a thin builder over go-pretty's table.Writer.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table that renders in mode m.
func NewTable(m Mode) *Table {
	style := table.StyleDefault
	if m == ASCII {
		style = table.StyleLight
	}
	// Keep headers and footers as written; the stock styles upper-case them.
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	w := table.NewWriter()
	w.SetStyle(style)
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) {
	t.writer.AppendFooter(table.Row(vals))
}

// Columns applies per-column alignment and width limits.
func (t *Table) Columns(cols ...Column) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		align := text.AlignDefault
		if c.AlignRight {
			align = text.AlignRight
		}
		cfgs[i] = table.ColumnConfig{Number: c.Number, Align: align, WidthMax: c.MaxWidth}
	}
	t.writer.SetColumnConfigs(cfgs)
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
