package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"delicrem-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFechaAceptaFechaPlana(t *testing.T) {
	var f model.Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-20"`), &f))
	assert.True(t, f.MismoDia("2024-05-20"))
}

func TestFechaAceptaRFC3339(t *testing.T) {
	var f model.Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-20T15:04:05Z"`), &f))
	assert.True(t, f.MismoDia("2024-05-20"))
}

func TestFechaRechazaBasura(t *testing.T) {
	var f model.Fecha
	assert.Error(t, json.Unmarshal([]byte(`"20/05/2024"`), &f))
}

func TestFechaEmiteRFC3339(t *testing.T) {
	f := model.NuevaFecha(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-20T00:00:00Z"`, string(b))
}

func TestFechaCeroEmiteNull(t *testing.T) {
	var f model.Fecha
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.True(t, f.IsZero())
}

func TestCantidadAceptaNumeros(t *testing.T) {
	var q model.Cantidad
	require.NoError(t, json.Unmarshal([]byte("12"), &q))
	assert.Equal(t, 12, q.Int())
}

func TestCantidadLimpiaCadenas(t *testing.T) {
	casos := map[string]int{
		`"12"`:    12,
		`"1 200"`: 1200,
		`"12kg"`:  12,
		`"abc"`:   0,
		`""`:      0,
	}
	for entrada, esperado := range casos {
		var q model.Cantidad
		require.NoError(t, json.Unmarshal([]byte(entrada), &q), "entrada %s", entrada)
		assert.Equal(t, esperado, q.Int(), "entrada %s", entrada)
	}
}
