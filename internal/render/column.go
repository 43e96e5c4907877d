package render

import (
	"errors"
	"fmt"
	"strings"

	"aiss/internal/formatting"
)

// Justify controls horizontal alignment of a table column.
type Justify int

const (
	JustifyDefault Justify = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
)

// Formatter converts a raw cell value into display text. Errors and panics
// are recovered by the table renderer, which then shows the raw value.
type Formatter func(value any) (string, error)

// Column describes one table column: the record field it reads and how it is
// presented.
type Column struct {
	Field   string
	Header  string
	Style   string
	Justify Justify
	NoWrap  bool
	Format  Formatter
}

// Using adapts a total formatting function.
func Using(fn func(any) string) Formatter {
	return func(value any) (string, error) {
		return fn(value), nil
	}
}

// Spec builds a formatter from an fmt format string such as "%.2f". A verb
// that does not match the value is reported as an error.
func Spec(spec string) Formatter {
	return func(value any) (string, error) {
		out := fmt.Sprintf(spec, value)
		if strings.Contains(out, "%!") {
			return "", errors.New("format spec " + spec + " does not apply to value")
		}
		return out, nil
	}
}

var (
	FormatMoney      = Using(func(v any) string { return formatting.Money(v) })
	FormatYear       = Using(formatting.Year)
	FormatNumber     = Using(formatting.Number)
	FormatDecimal    = Using(func(v any) string { return formatting.Decimal(v) })
	FormatPercentage = Using(formatting.Percentage)
	FormatRuntime    = Using(formatting.RuntimeMinutes)
)

// Col is shorthand for a left-aligned column with no formatter.
func Col(field, header string) Column {
	return Column{Field: field, Header: header}
}
