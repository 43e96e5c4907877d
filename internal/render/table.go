package render

import (
	"reflect"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"aiss/internal/formatting"
	"aiss/internal/record"
)

const wrapWidth = 40

// RenderTable writes one table. Nothing is written when there are no records
// or no columns.
func RenderTable(sink *Sink, title string, columns []Column, records []record.Record) {
	if len(records) == 0 || len(columns) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = true
	tw.Style().Title.Align = text.AlignCenter
	tw.Style().Format.Header = text.FormatDefault
	if title = strings.TrimSpace(title); title != "" {
		tw.SetTitle(title)
	}

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, col := range columns {
		header[i] = col.Header
		cfg := table.ColumnConfig{
			Number:      i + 1,
			Align:       alignment(col.Justify),
			AlignHeader: alignment(col.Justify),
		}
		if !col.NoWrap {
			cfg.WidthMax = wrapWidth
		}
		if sink.Colorize() {
			cfg.Colors = tableColors(col.Style)
			cfg.ColorsHeader = text.Colors{text.Bold}
		}
		configs = append(configs, cfg)
	}
	tw.AppendHeader(header)

	for _, rec := range records {
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = CellText(col, rec)
		}
		tw.AppendRow(row)
	}
	tw.SetColumnConfigs(configs)
	sink.Println(tw.Render())
}

// CellText resolves and formats one cell. Absent or empty values render as
// the placeholder.
func CellText(col Column, rec record.Record) string {
	raw, ok := rec.Get(col.Field)
	if !ok || isEmpty(raw) {
		return formatting.Placeholder
	}
	if col.Format == nil {
		return formatting.Stringify(raw)
	}
	return applyFormatter(col.Format, raw)
}

func applyFormatter(format Formatter, raw any) (out string) {
	defer func() {
		if recover() != nil {
			out = formatting.Stringify(raw)
		}
	}()
	formatted, err := format(raw)
	if err != nil {
		return formatting.Stringify(raw)
	}
	return formatted
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

func alignment(j Justify) text.Align {
	switch j {
	case JustifyCenter:
		return text.AlignCenter
	case JustifyRight:
		return text.AlignRight
	case JustifyLeft:
		return text.AlignLeft
	default:
		return text.AlignDefault
	}
}
