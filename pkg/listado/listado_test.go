package listado_test

import (
	"testing"

	"delicrem-api/pkg/listado"

	"github.com/stretchr/testify/assert"
)

func TestFiltrar(t *testing.T) {
	nombres := []string{"Harina de Trigo", "Cacao", "harina de maíz", "Azúcar"}
	clave := func(s string) string { return s }

	assert.Equal(t, nombres, listado.Filtrar(nombres, "", clave))

	filtrados := listado.Filtrar(nombres, "HARINA", clave)
	assert.Equal(t, []string{"Harina de Trigo", "harina de maíz"}, filtrados)

	assert.Empty(t, listado.Filtrar(nombres, "mantequilla", clave))
}

func TestFiltrarConservaElOrden(t *testing.T) {
	items := []string{"bb", "ab", "ba"}
	filtrados := listado.Filtrar(items, "b", func(s string) string { return s })
	assert.Equal(t, items, filtrados)
}

func TestPaginar(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, listado.Paginar(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, listado.Paginar(items, 2, 3))
	assert.Equal(t, []int{7}, listado.Paginar(items, 3, 3))
	assert.Empty(t, listado.Paginar(items, 4, 3))

	// Invalid paging parameters leave the list untouched
	assert.Equal(t, items, listado.Paginar(items, 0, 3))
	assert.Equal(t, items, listado.Paginar(items, 1, 0))
}

func TestTotalPaginas(t *testing.T) {
	assert.Equal(t, 3, listado.TotalPaginas(7, 3))
	assert.Equal(t, 2, listado.TotalPaginas(6, 3))
	assert.Equal(t, 0, listado.TotalPaginas(0, 3))
	assert.Equal(t, 0, listado.TotalPaginas(7, 0))
	assert.Equal(t, 1, listado.TotalPaginas(1, 5))
}
