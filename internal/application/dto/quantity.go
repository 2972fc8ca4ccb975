package dto

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Quantity cantidad entera de una línea. Acepta números JSON con parte decimal nula
// (2 o 2.0) y enteros entre comillas ("2"); rechaza fracciones (2.5).
type Quantity int

var errQuantityNotInteger = errors.New("quantity debe ser un número entero")

// UnmarshalJSON implementa json.Unmarshaler. null deja el valor en cero.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	b = bytes.Trim(b, `"`)
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("%w: %q", errQuantityNotInteger, b)
	}
	if !d.IsInteger() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return fmt.Errorf("%w: %s", errQuantityNotInteger, d.String())
	}
	*q = Quantity(d.IntPart())
	return nil
}
