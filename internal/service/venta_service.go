package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/internal/ws"
	"delicrem-api/pkg/listado"
	"delicrem-api/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRequest struct {
	IDCliente    uint                  `json:"id_cliente"`
	NumeroPedido string                `json:"numero_pedido"`
	FechaVenta   model.Fecha           `json:"fecha_venta"`
	Estado       string                `json:"estado"`
	Pagado       bool                  `json:"pagado"`
	Detalles     []DetalleVentaRequest `json:"detalles"`
}

type DetalleVentaRequest struct {
	IDProducto     uint            `json:"id_producto"`
	Cantidad       model.Cantidad  `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// VentaFiltros narrows the sales list: substring on the cliente name plus an
// inclusive fecha_venta range (calendar days, "2006-01-02").
type VentaFiltros struct {
	Cliente string
	Desde   string
	Hasta   string
}

type VentaService interface {
	Listar(filtros VentaFiltros) ([]model.Venta, error)
	Obtener(id uint) (*model.Venta, error)
	Crear(req *VentaRequest) (*model.Venta, error)
	ActualizarEstado(id uint, estado string) (*model.Venta, error)
	Eliminar(id uint) error
}

type ventaService struct {
	repo  repository.VentaRepository
	db    *gorm.DB
	wsHub *ws.Hub
}

func NewVentaService(repo repository.VentaRepository, db *gorm.DB, hub *ws.Hub) VentaService {
	return &ventaService{repo: repo, db: db, wsHub: hub}
}

func (s *ventaService) Listar(filtros VentaFiltros) ([]model.Venta, error) {
	ventas, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return FiltrarVentas(ventas, filtros), nil
}

// FiltrarVentas applies the list filters in memory, preserving order.
func FiltrarVentas(ventas []model.Venta, filtros VentaFiltros) []model.Venta {
	porCliente := listado.Filtrar(ventas, filtros.Cliente, func(v model.Venta) string {
		if v.Cliente == nil {
			return ""
		}
		return v.Cliente.Nombre
	})
	resultado := make([]model.Venta, 0, len(porCliente))
	for _, v := range porCliente {
		dia := v.FechaVenta.UTC().Format("2006-01-02")
		if filtros.Desde != "" && dia < filtros.Desde {
			continue
		}
		if filtros.Hasta != "" && dia > filtros.Hasta {
			continue
		}
		resultado = append(resultado, v)
	}
	return resultado
}

func (s *ventaService) Obtener(id uint) (*model.Venta, error) {
	v, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return v, nil
}

// ValidarVenta applies the sales form rules with per-row keys
// producto_i / cantidad_i / precio_i.
func ValidarVenta(req *VentaRequest) validator.ErrorMap {
	errs := validator.ErrorMap{}
	if req.IDCliente == 0 {
		errs.Agregar("id_cliente", "El campo id_cliente es obligatorio.")
	}
	if req.NumeroPedido == "" {
		errs.Agregar("numero_pedido", "El campo numero_pedido es obligatorio.")
	}
	if req.FechaVenta.IsZero() {
		errs.Agregar("fecha_venta", "El campo fecha_venta es obligatorio.")
	}
	if req.Estado == "" {
		errs.Agregar("estado", "El campo estado es obligatorio.")
	} else if !validator.EstadoValido(req.Estado) {
		errs.Agregar("estado", "El campo estado debe ser pendiente, en preparación o completado.")
	}
	if len(req.Detalles) == 0 {
		errs.Agregar("detalles", "Debe agregar al menos un producto a la venta.")
	}
	for i, d := range req.Detalles {
		if d.IDProducto == 0 {
			errs.Agregar(fmt.Sprintf("producto_%d", i), "Seleccione un producto.")
		}
		if d.Cantidad.Int() <= 0 {
			errs.Agregar(fmt.Sprintf("cantidad_%d", i), "La cantidad debe ser mayor que 0.")
		}
		if !d.PrecioUnitario.IsPositive() {
			errs.Agregar(fmt.Sprintf("precio_%d", i), "El precio debe ser mayor que 0.")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// TieneProductosDuplicados is the line-item guard for ventas and pedidos.
func TieneProductosDuplicados[T interface{ Producto() uint }](detalles []T) bool {
	vistos := map[uint]bool{}
	for _, d := range detalles {
		if vistos[d.Producto()] {
			return true
		}
		vistos[d.Producto()] = true
	}
	return false
}

func (d DetalleVentaRequest) Producto() uint { return d.IDProducto }

func (s *ventaService) Crear(req *VentaRequest) (*model.Venta, error) {
	if errs := ValidarVenta(req); errs != nil {
		return nil, errCampos(errs)
	}
	if TieneProductosDuplicados(req.Detalles) {
		return nil, errors.New("No se pueden seleccionar productos duplicados.")
	}

	venta := &model.Venta{
		IDCliente:    req.IDCliente,
		NumeroPedido: req.NumeroPedido,
		FechaVenta:   req.FechaVenta,
		Estado:       validator.NormalizarEstado(req.Estado),
		Pagado:       req.Pagado,
	}
	total := decimal.Zero
	for _, d := range req.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad.Int()))))
		venta.Detalles = append(venta.Detalles, model.DetalleVenta{
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad.Int(),
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	venta.Total = total

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Cliente{}, "id_cliente = ?", req.IDCliente).Error; err != nil {
			return errors.New("El cliente seleccionado no existe.")
		}
		// Selling discounts finished stock under lock
		for _, d := range venta.Detalles {
			var producto model.Producto
			if err := tx.Set("gorm:query_option", "FOR UPDATE").
				First(&producto, "id_producto = ?", d.IDProducto).Error; err != nil {
				return errors.New("El producto seleccionado no existe.")
			}
			if producto.Stock < d.Cantidad {
				return fmt.Errorf("Stock insuficiente del producto '%s'.", producto.Nombre)
			}
			if err := tx.Model(&model.Producto{}).
				Where("id_producto = ?", producto.ID).
				Update("stock", producto.Stock-d.Cantidad).Error; err != nil {
				return err
			}
		}
		return tx.Create(venta).Error
	})
	if err != nil {
		return nil, err
	}

	s.notificar(map[string]interface{}{
		"type":    "stock_update",
		"action":  "venta_registrada",
		"venta":   venta.ID,
		"message": fmt.Sprintf("Venta #%d registrada, stock de productos actualizado", venta.ID),
	})
	return s.Obtener(venta.ID)
}

func (s *ventaService) ActualizarEstado(id uint, estado string) (*model.Venta, error) {
	if estado == "" || !validator.EstadoValido(estado) {
		return nil, errCampos(validator.ErrorMap{
			"estado": "El campo estado debe ser pendiente, en preparación o completado.",
		})
	}
	if err := s.repo.UpdateEstado(id, validator.NormalizarEstado(estado)); err != nil {
		return nil, noEncontrado(err)
	}
	return s.Obtener(id)
}

// Eliminar restores the stock the venta discounted, then removes it.
func (s *ventaService) Eliminar(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var venta model.Venta
		if err := tx.Preload("Detalles").First(&venta, "id_venta = ?", id).Error; err != nil {
			return noEncontrado(err)
		}
		for _, d := range venta.Detalles {
			var producto model.Producto
			if err := tx.Set("gorm:query_option", "FOR UPDATE").
				First(&producto, "id_producto = ?", d.IDProducto).Error; err != nil {
				continue // the producto was removed later; nothing to restore
			}
			if err := tx.Model(&model.Producto{}).
				Where("id_producto = ?", producto.ID).
				Update("stock", producto.Stock+d.Cantidad).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("id_venta = ?", id).Delete(&model.DetalleVenta{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Venta{}, "id_venta = ?", id).Error
	})
}

func (s *ventaService) notificar(payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	go func() {
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
