package service_test

import (
	"testing"

	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insumoFixture(t *testing.T) (service.InsumoService, *stubInsumoRepo, *stubCategoriaRepo) {
	t.Helper()
	insumos := newStubInsumoRepo()
	categorias := newStubCategoriaRepo()
	require.NoError(t, categorias.Create(&model.CategoriaInsumo{
		Nombre:      "Harinas",
		Descripcion: "Harinas y bases",
	}))
	return service.NewInsumoService(insumos, categorias), insumos, categorias
}

func TestInsumoCrear(t *testing.T) {
	svc, _, _ := insumoFixture(t)

	i, err := svc.Crear(&service.InsumoRequest{
		Nombre:      "Harina de Trigo",
		StockActual: 50,
		IDCategoria: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, i.StockActual)
}

func TestInsumoCategoriaInexistente(t *testing.T) {
	svc, _, _ := insumoFixture(t)

	_, err := svc.Crear(&service.InsumoRequest{
		Nombre:      "Harina de Trigo",
		StockActual: 50,
		IDCategoria: 7,
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "id_categoria")
}

func TestInsumoNombreConNumeros(t *testing.T) {
	svc, _, _ := insumoFixture(t)

	_, err := svc.Crear(&service.InsumoRequest{
		Nombre:      "Harina2",
		StockActual: 50,
		IDCategoria: 1,
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "nombre")
}

func TestInsumoEliminarEnUso(t *testing.T) {
	svc, insumos, _ := insumoFixture(t)

	i, err := svc.Crear(&service.InsumoRequest{
		Nombre:      "Harina de Trigo",
		StockActual: 50,
		IDCategoria: 1,
	})
	require.NoError(t, err)
	insumos.enUso[i.ID] = true

	err = svc.Eliminar(i.ID)
	require.Error(t, err)
	assert.Equal(t, "El insumo no se puede eliminar ya que se encuentra asociado a una categoría de insumo y/o a una ficha técnica.", err.Error())
}

func TestCategoriaEliminarConInsumos(t *testing.T) {
	svc, _, categorias := insumoFixture(t)
	categorias.conInsumos[1] = true

	err := svc.EliminarCategoria(1)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar la categoría ya que tiene insumos asociados.", err.Error())
}
