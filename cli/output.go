package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	noteStyle   = lipgloss.NewStyle().Italic(true)
)

// field is one labelled value of a result rendered as text.
type field struct {
	label string
	value string
}

// printer writes results in the selected output format.
type printer struct {
	w      io.Writer
	format string
}

// result writes v as JSON or YAML, or calls text for the text format.
func (p printer) result(v any, text func()) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(toPlain(v)); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

func (p printer) fields(title string, fields ...field) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return numberStyle
			}
			return cellStyle
		})
	for _, f := range fields {
		t.Row(f.label, f.value)
	}
	fmt.Fprintln(p.w, titleStyle.Render(title))
	fmt.Fprintln(p.w, t.Render())
}

func (p printer) table(title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})
	fmt.Fprintln(p.w, titleStyle.Render(title))
	fmt.Fprintln(p.w, t.Render())
}

func (p printer) note(msg string) {
	fmt.Fprintln(p.w, noteStyle.Render(msg))
}

// toPlain round-trips v through JSON so YAML output uses the json field names.
func toPlain(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return v
	}
	return plain
}

func money(v float64) string {
	return number(v, 2)
}

func percent(rate float64) string {
	return number(rate*100, 2) + "%"
}

func number(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func integer(n int) string {
	return strconv.Itoa(n)
}
