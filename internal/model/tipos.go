package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way the capture forms sent them.
	decimal.MarshalJSONWithoutQuotes = true
}

const formatoFecha = "2006-01-02"

// Fecha is a date field that accepts both "2006-01-02" (the purchase form
// sends plain dates) and full RFC 3339 timestamps, and always emits RFC 3339.
type Fecha struct {
	time.Time
}

func NuevaFecha(t time.Time) Fecha {
	return Fecha{Time: t}
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.Time = t
		return nil
	}
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return fmt.Errorf("fecha inválida: %q", s)
	}
	f.Time = t
	return nil
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.UTC().Format(time.RFC3339) + `"`), nil
}

// MismoDia reports whether f falls on the given calendar date ("2006-01-02").
func (f Fecha) MismoDia(dia string) bool {
	return f.UTC().Format(formatoFecha) == dia
}

func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *Fecha) Scan(v interface{}) error {
	switch t := v.(type) {
	case time.Time:
		f.Time = t
	case nil:
		f.Time = time.Time{}
	default:
		return fmt.Errorf("no se puede leer %T como fecha", v)
	}
	return nil
}

// Cantidad accepts JSON numbers or numeric strings. The capture forms stripped
// non-digits on input (value.replace(/\D/g, "")), so strings are cleaned the
// same way before parsing.
type Cantidad int

func (q *Cantidad) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	var digitos strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}
	if digitos.Len() == 0 {
		*q = 0
		return nil
	}
	n, err := strconv.Atoi(digitos.String())
	if err != nil {
		return fmt.Errorf("cantidad inválida: %q", s)
	}
	*q = Cantidad(n)
	return nil
}

func (q Cantidad) Int() int {
	return int(q)
}
