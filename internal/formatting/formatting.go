package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered for absent or unusable values.
const Placeholder = "-"

// Present is the display form of an open-ended year.
const Present = "Present"

// presentYear is the sentinel year meaning "still running".
const presentYear = 9999

var (
	// ErrNotNumeric reports a value that is recognisably scalar but carries no number.
	ErrNotNumeric = errors.New("value is not numeric")
	// ErrUnsupportedType reports a value whose shape cannot be coerced at all.
	ErrUnsupportedType = errors.New("unsupported value type")
)

var grouping = message.NewPrinter(language.English)

// CoerceNumeric converts numbers and numeric strings into a float64. Thousands
// separators are stripped from strings; nil, blank strings and the literal
// "present" are rejected with ErrNotNumeric.
func CoerceNumeric(value any) (float64, error) {
	switch v := deref(value).(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrNotNumeric)
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return parseNumericString(string(v))
	case string:
		return parseNumericString(v)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func parseNumericString(raw string) (float64, error) {
	stripped := strings.TrimSpace(raw)
	if stripped == "" {
		return 0, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	cleaned := strings.ReplaceAll(stripped, ",", "")
	if strings.EqualFold(cleaned, "present") {
		return 0, fmt.Errorf("%w: present sentinel", ErrNotNumeric)
	}
	number, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, stripped)
	}
	return number, nil
}

// Money renders a whole currency amount with grouped thousands. The fraction is
// truncated. Non-numeric text is shown after the currency symbol as given.
func Money(value any, currency ...string) string {
	symbol := "$"
	if len(currency) > 0 {
		symbol = currency[0]
	}
	number, err := CoerceNumeric(value)
	if err != nil {
		if isBlank(value) {
			return Placeholder
		}
		return symbol + Stringify(value)
	}
	if !finite(number) {
		return symbol + Stringify(value)
	}
	return symbol + groupWhole(math.Trunc(number))
}

// Year renders a calendar year. Values at or beyond 9999 mean the run is
// ongoing and render as Present.
func Year(value any) string {
	value = deref(value)
	if isBlank(value) {
		return Placeholder
	}
	var number float64
	switch v := value.(type) {
	case string:
		stripped := strings.TrimSpace(v)
		if strings.EqualFold(stripped, "present") {
			return Present
		}
		parsed, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			return stripped
		}
		number = parsed
	default:
		parsed, err := CoerceNumeric(v)
		if err != nil {
			return Stringify(v)
		}
		number = parsed
	}
	if !finite(number) {
		return Stringify(value)
	}
	switch {
	case number >= presentYear:
		return Present
	case number < 1:
		return Placeholder
	default:
		return strconv.FormatInt(int64(number), 10)
	}
}

// Number renders grouped thousands. Whole values drop their fraction, other
// values keep up to two decimals.
func Number(value any) string {
	if isNil(value) {
		return Placeholder
	}
	number, err := CoerceNumeric(value)
	if err != nil || !finite(number) {
		return Stringify(value)
	}
	if number == math.Trunc(number) && math.Abs(number) < 1<<62 {
		return grouping.Sprintf("%d", int64(number))
	}
	return trimZeros(grouping.Sprintf("%.2f", number))
}

// Decimal renders a fixed-point value with the given number of places
// (default 1) and strips trailing zeros.
func Decimal(value any, digits ...int) string {
	places := 1
	if len(digits) > 0 && digits[0] >= 0 {
		places = digits[0]
	}
	if isNil(value) {
		return Placeholder
	}
	number, err := CoerceNumeric(value)
	if err != nil || !finite(number) {
		return Stringify(value)
	}
	return trimZeros(strconv.FormatFloat(number, 'f', places, 64))
}

// Percentage renders a ratio or an already-scaled percentage. Magnitudes up to
// one are treated as ratios.
func Percentage(value any) string {
	if isNil(value) {
		return Placeholder
	}
	number, err := CoerceNumeric(value)
	if err != nil || !finite(number) {
		return Stringify(value)
	}
	if math.Abs(number) <= 1 {
		number *= 100
	}
	return trimZeros(strconv.FormatFloat(number, 'f', 1, 64)) + "%"
}

// RuntimeMinutes renders a duration in whole minutes.
func RuntimeMinutes(value any) string {
	if isNil(value) {
		return Placeholder
	}
	number, err := CoerceNumeric(value)
	if err != nil || !finite(number) {
		return Stringify(value)
	}
	minutes := math.RoundToEven(number)
	if minutes <= 0 {
		return Placeholder
	}
	return groupWhole(minutes) + " min"
}

// groupWhole groups a whole number. Magnitudes outside int64 are printed from
// the float so they never wrap.
func groupWhole(number float64) string {
	if math.Abs(number) >= 1<<63 {
		return grouping.Sprintf("%.0f", number)
	}
	return grouping.Sprintf("%d", int64(number))
}

// Stringify is the plain conversion used whenever a formatter cannot apply.
// Sequences are joined with ", " and nil becomes the placeholder.
func Stringify(value any) string {
	value = deref(value)
	switch v := value.(type) {
	case nil:
		return Placeholder
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case fmt.Stringer:
		return v.String()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, Stringify(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ", ")
	}
	if f, ok := value.(float64); ok && f == math.Trunc(f) && finite(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(value)
}

func trimZeros(text string) string {
	if !strings.Contains(text, ".") {
		return text
	}
	text = strings.TrimRight(text, "0")
	return strings.TrimSuffix(text, ".")
}

func deref(value any) any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func isNil(value any) bool {
	return deref(value) == nil
}

func isBlank(value any) bool {
	switch v := deref(value).(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func finite(number float64) bool {
	return !math.IsNaN(number) && !math.IsInf(number, 0)
}
