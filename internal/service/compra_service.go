package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/internal/ws"
	"delicrem-api/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraRequest struct {
	IDProveedor uint                   `json:"id_proveedor"`
	FechaCompra model.Fecha            `json:"fecha_compra"`
	Estado      string                 `json:"estado"`
	Detalles    []DetalleCompraRequest `json:"detalles"`
}

type DetalleCompraRequest struct {
	IDInsumo       uint            `json:"id_insumo"`
	Cantidad       model.Cantidad  `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type CompraService interface {
	Listar() ([]model.Compra, error)
	Obtener(id uint) (*model.Compra, error)
	Crear(req *CompraRequest) (*model.Compra, error)
	Eliminar(id uint) error
}

type compraService struct {
	repo  repository.CompraRepository
	db    *gorm.DB
	wsHub *ws.Hub
}

func NewCompraService(repo repository.CompraRepository, db *gorm.DB, hub *ws.Hub) CompraService {
	return &compraService{repo: repo, db: db, wsHub: hub}
}

func (s *compraService) Listar() ([]model.Compra, error) {
	return s.repo.FindAll()
}

func (s *compraService) Obtener(id uint) (*model.Compra, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return c, nil
}

// ValidarCompra applies the purchase form rules: header fields, a non-empty
// detalle, and per-row checks keyed insumo_i / cantidad_i / precio_i.
func ValidarCompra(req *CompraRequest) validator.ErrorMap {
	errs := validator.ErrorMap{}
	if req.IDProveedor == 0 {
		errs.Agregar("id_proveedor", "El campo id_proveedor es obligatorio.")
	}
	if req.FechaCompra.IsZero() {
		errs.Agregar("fecha_compra", "El campo fecha_compra es obligatorio.")
	}
	if req.Estado == "" {
		errs.Agregar("estado", "El campo estado es obligatorio.")
	} else if !validator.EstadoValido(req.Estado) {
		errs.Agregar("estado", "El campo estado debe ser pendiente, en preparación o completado.")
	}
	if len(req.Detalles) == 0 {
		errs.Agregar("detalles", "Debe agregar al menos un insumo a la compra.")
	}
	for i, d := range req.Detalles {
		if d.IDInsumo == 0 {
			errs.Agregar(fmt.Sprintf("insumo_%d", i), "Seleccione un insumo.")
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

// TieneInsumosDuplicados is the line-item guard: the same insumo cannot
// appear on two rows.
func TieneInsumosDuplicados(detalles []DetalleCompraRequest) bool {
	vistos := map[uint]bool{}
	for _, d := range detalles {
		if vistos[d.IDInsumo] {
			return true
		}
		vistos[d.IDInsumo] = true
	}
	return false
}

func (s *compraService) Crear(req *CompraRequest) (*model.Compra, error) {
	if errs := ValidarCompra(req); errs != nil {
		return nil, errCampos(errs)
	}
	// The guard runs before any write
	if TieneInsumosDuplicados(req.Detalles) {
		return nil, errors.New("No se pueden seleccionar insumos duplicados.")
	}

	estado := validator.NormalizarEstado(req.Estado)
	compra := &model.Compra{
		IDProveedor: req.IDProveedor,
		FechaCompra: req.FechaCompra,
		Estado:      estado,
	}
	total := decimal.Zero
	for _, d := range req.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad.Int()))))
		compra.Detalles = append(compra.Detalles, model.DetalleCompra{
			IDInsumo:       d.IDInsumo,
			Cantidad:       d.Cantidad.Int(),
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	compra.Total = total

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Proveedor{}, "id_proveedor = ?", req.IDProveedor).Error; err != nil {
			return errors.New("El proveedor seleccionado no existe.")
		}
		if err := tx.Create(compra).Error; err != nil {
			return err
		}
		// Only completed purchases have arrived; they are the ones that move stock
		if compra.Estado != model.EstadoCompletado {
			return nil
		}
		for _, d := range compra.Detalles {
			var insumo model.Insumo
			if err := tx.Set("gorm:query_option", "FOR UPDATE").
				First(&insumo, "id_insumo = ?", d.IDInsumo).Error; err != nil {
				return errors.New("El insumo seleccionado no existe.")
			}
			if err := tx.Model(&model.Insumo{}).
				Where("id_insumo = ?", insumo.ID).
				Update("stock_actual", insumo.StockActual+d.Cantidad).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if compra.Estado == model.EstadoCompletado {
		s.notificar(map[string]interface{}{
			"type":    "stock_update",
			"action":  "compra_completada",
			"compra":  compra.ID,
			"insumos": len(compra.Detalles),
			"message": fmt.Sprintf("Compra #%d recibida, stock de insumos actualizado", compra.ID),
		})
	}
	return s.Obtener(compra.ID)
}

// Eliminar reverts the stock a completed compra brought in, then removes it.
func (s *compraService) Eliminar(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var compra model.Compra
		if err := tx.Preload("Detalles").First(&compra, "id_compra = ?", id).Error; err != nil {
			return noEncontrado(err)
		}
		if compra.Estado == model.EstadoCompletado {
			for _, d := range compra.Detalles {
				var insumo model.Insumo
				if err := tx.Set("gorm:query_option", "FOR UPDATE").
					First(&insumo, "id_insumo = ?", d.IDInsumo).Error; err != nil {
					return err
				}
				if insumo.StockActual < d.Cantidad {
					return fmt.Errorf("No se puede eliminar la compra porque el stock de '%s' ya fue consumido.", insumo.Nombre)
				}
				if err := tx.Model(&model.Insumo{}).
					Where("id_insumo = ?", insumo.ID).
					Update("stock_actual", insumo.StockActual-d.Cantidad).Error; err != nil {
					return err
				}
			}
		}
		if err := tx.Where("id_compra = ?", id).Delete(&model.DetalleCompra{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Compra{}, "id_compra = ?", id).Error
	})
}

func (s *compraService) notificar(payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	go func() {
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
