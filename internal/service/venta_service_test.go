package service_test

import (
	"testing"
	"time"

	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ventaValida() *service.VentaRequest {
	return &service.VentaRequest{
		IDCliente:    1,
		NumeroPedido: "V-001",
		FechaVenta:   model.NuevaFecha(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		Estado:       "pendiente",
		Detalles: []service.DetalleVentaRequest{
			{IDProducto: 1, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("8000")},
		},
	}
}

func TestValidarVentaCompleta(t *testing.T) {
	assert.Nil(t, service.ValidarVenta(ventaValida()))
}

func TestValidarVentaCamposFaltantes(t *testing.T) {
	errs := service.ValidarVenta(&service.VentaRequest{})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "id_cliente")
	assert.Contains(t, errs, "numero_pedido")
	assert.Contains(t, errs, "fecha_venta")
	assert.Contains(t, errs, "estado")
	assert.Contains(t, errs, "detalles")
}

func TestValidarVentaFilaInvalida(t *testing.T) {
	req := ventaValida()
	req.Detalles = append(req.Detalles, service.DetalleVentaRequest{})
	errs := service.ValidarVenta(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "producto_1")
	assert.Contains(t, errs, "cantidad_1")
	assert.Contains(t, errs, "precio_1")
}

func TestTieneProductosDuplicados(t *testing.T) {
	sin := []service.DetalleVentaRequest{
		{IDProducto: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)},
		{IDProducto: 2, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)},
	}
	con := append(sin, service.DetalleVentaRequest{IDProducto: 1, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(100)})
	assert.False(t, service.TieneProductosDuplicados(sin))
	assert.True(t, service.TieneProductosDuplicados(con))
}

func ventaDePrueba(cliente string, dia string) model.Venta {
	fecha, _ := time.Parse("2006-01-02", dia)
	return model.Venta{
		Cliente:    &model.Cliente{Nombre: cliente},
		FechaVenta: model.NuevaFecha(fecha),
	}
}

func TestFiltrarVentasPorCliente(t *testing.T) {
	ventas := []model.Venta{
		ventaDePrueba("Panadería La Espiga", "2024-06-01"),
		ventaDePrueba("Café del Parque", "2024-06-02"),
		ventaDePrueba("la espiga express", "2024-06-03"),
	}

	filtradas := service.FiltrarVentas(ventas, service.VentaFiltros{Cliente: "espiga"})
	require.Len(t, filtradas, 2)
	assert.Equal(t, "Panadería La Espiga", filtradas[0].Cliente.Nombre)
	assert.Equal(t, "la espiga express", filtradas[1].Cliente.Nombre)
}

func TestFiltrarVentasPorRangoDeFechas(t *testing.T) {
	ventas := []model.Venta{
		ventaDePrueba("A", "2024-06-01"),
		ventaDePrueba("B", "2024-06-05"),
		ventaDePrueba("C", "2024-06-10"),
	}

	filtradas := service.FiltrarVentas(ventas, service.VentaFiltros{Desde: "2024-06-02", Hasta: "2024-06-09"})
	require.Len(t, filtradas, 1)
	assert.Equal(t, "B", filtradas[0].Cliente.Nombre)

	soloDesde := service.FiltrarVentas(ventas, service.VentaFiltros{Desde: "2024-06-05"})
	assert.Len(t, soloDesde, 2)
}

func TestVentaCrearRechazaDuplicadosAntesDeGuardar(t *testing.T) {
	svc := service.NewVentaService(nil, nil, nil)
	req := ventaValida()
	req.Detalles = append(req.Detalles, service.DetalleVentaRequest{
		IDProducto: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100),
	})

	_, err := svc.Crear(req)
	require.Error(t, err)
	assert.Equal(t, "No se pueden seleccionar productos duplicados.", err.Error())
}
