package service_test

import (
	"testing"

	"delicrem-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productoValido() *service.ProductoRequest {
	return &service.ProductoRequest{
		Nombre:      "Torta de Chocolate",
		Descripcion: "Torta húmeda de chocolate",
		Precio:      decimal.RequireFromString("25000"),
		Stock:       10,
	}
}

func TestProductoCrear(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil, nil)

	p, err := svc.Crear(productoValido())
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, 10, p.Stock)
}

func TestProductoPrecioNoPositivo(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), nil, nil)

	req := productoValido()
	req.Precio = decimal.Zero
	_, err := svc.Crear(req)
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "El campo precio debe ser mayor que 0.", ve.Fields["precio"])

	req.Precio = decimal.RequireFromString("-5")
	_, err = svc.Crear(req)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "precio")
}

func TestProductoNombreConNumeros(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), nil, nil)

	req := productoValido()
	req.Nombre = "Torta 3 Leches"
	_, err := svc.Crear(req)
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "nombre")
}

func TestProductoEliminarEnUso(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil, nil)

	p, err := svc.Crear(productoValido())
	require.NoError(t, err)
	repo.enUso[p.ID] = true

	err = svc.Eliminar(p.ID)
	require.Error(t, err)
	assert.Equal(t, "El producto no se puede eliminar ya que se encuentra asociado a una venta y/o a una orden de producción.", err.Error())
}

func TestProducirSinProductos(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), nil, nil)

	err := svc.Producir(&service.ProduccionRequest{})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "productosProduccion")
}

func TestProducirFilasInvalidas(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), nil, nil)

	err := svc.Producir(&service.ProduccionRequest{
		Productos: []service.ProduccionItem{
			{IDProducto: 1, Cantidad: 5},
			{IDProducto: 0, Cantidad: 0},
		},
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "producto_1")
	assert.Contains(t, ve.Fields, "cantidad_1")
}

func TestProducirRechazaDuplicadosAntesDeGuardar(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), nil, nil)

	err := svc.Producir(&service.ProduccionRequest{
		Productos: []service.ProduccionItem{
			{IDProducto: 1, Cantidad: 5},
			{IDProducto: 1, Cantidad: 3},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "No se pueden seleccionar productos duplicados.", err.Error())
}
