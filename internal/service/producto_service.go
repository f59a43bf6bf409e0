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

type ProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=3,letras"`
	Descripcion string          `json:"descripcion" validate:"required,min=5,letras"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       model.Cantidad  `json:"stock"`
}

// ProduccionRequest is the batch the production modal submits. Each line
// consumes the producto's ficha técnica insumos and raises its stock.
type ProduccionRequest struct {
	Productos []ProduccionItem `json:"productosProduccion"`
}

type ProduccionItem struct {
	IDProducto uint           `json:"id_producto"`
	Cantidad   model.Cantidad `json:"cantidad"`
}

type ProductoService interface {
	Listar() ([]model.Producto, error)
	Obtener(id uint) (*model.Producto, error)
	Crear(req *ProductoRequest) (*model.Producto, error)
	Actualizar(id uint, req *ProductoRequest) (*model.Producto, error)
	Eliminar(id uint) error
	Producir(req *ProduccionRequest) error
}

type productoService struct {
	repo  repository.ProductoRepository
	db    *gorm.DB
	wsHub *ws.Hub
}

func NewProductoService(repo repository.ProductoRepository, db *gorm.DB, hub *ws.Hub) ProductoService {
	return &productoService{repo: repo, db: db, wsHub: hub}
}

func (s *productoService) Listar() ([]model.Producto, error) {
	return s.repo.FindAll()
}

func (s *productoService) Obtener(id uint) (*model.Producto, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return p, nil
}

func (s *productoService) validar(req *ProductoRequest) validator.ErrorMap {
	errs := validator.ValidateStruct(req)
	if errs == nil {
		errs = validator.ErrorMap{}
	}
	if _, ya := errs["precio"]; !ya && !req.Precio.IsPositive() {
		errs.Agregar("precio", "El campo precio debe ser mayor que 0.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (s *productoService) Crear(req *ProductoRequest) (*model.Producto, error) {
	if errs := s.validar(req); errs != nil {
		return nil, errCampos(errs)
	}
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock.Int(),
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Actualizar(id uint, req *ProductoRequest) (*model.Producto, error) {
	if errs := s.validar(req); errs != nil {
		return nil, errCampos(errs)
	}
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	p.Stock = req.Stock.Int()
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Eliminar(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.repo.EnUso(id)
	if err != nil {
		return err
	}
	if enUso {
		return errors.New("El producto no se puede eliminar ya que se encuentra asociado a una venta y/o a una orden de producción.")
	}
	return s.repo.Delete(id)
}

// Producir runs a production batch: per producto, lock it, consume the ficha
// técnica insumos (cantidad de ficha × cantidad producida) and raise stock.
// All lines commit or none do.
func (s *productoService) Producir(req *ProduccionRequest) error {
	errs := validator.ErrorMap{}
	if len(req.Productos) == 0 {
		errs.Agregar("productosProduccion", "Debe agregar al menos un producto a producir.")
	}
	vistos := map[uint]bool{}
	duplicados := false
	for i, item := range req.Productos {
		if item.IDProducto == 0 {
			errs.Agregar(fmt.Sprintf("producto_%d", i), "Seleccione un producto.")
		} else if vistos[item.IDProducto] {
			duplicados = true
		}
		vistos[item.IDProducto] = true
		if item.Cantidad.Int() <= 0 {
			errs.Agregar(fmt.Sprintf("cantidad_%d", i), "La cantidad debe ser mayor que 0.")
		}
	}
	if len(errs) > 0 {
		return errCampos(errs)
	}
	// Duplicate rows are rejected before touching the database
	if duplicados {
		return errors.New("No se pueden seleccionar productos duplicados.")
	}

	type movimiento struct {
		producto string
		cantidad int
		stock    int
	}
	var movimientos []movimiento

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Productos {
			var producto model.Producto
			if err := tx.Set("gorm:query_option", "FOR UPDATE").
				First(&producto, "id_producto = ?", item.IDProducto).Error; err != nil {
				return ErrNoEncontrado
			}

			var ficha model.FichaTecnica
			if err := tx.Preload("Detalles.Insumo").
				First(&ficha, "id_producto = ?", producto.ID).Error; err != nil {
				return fmt.Errorf("El producto '%s' no tiene ficha técnica.", producto.Nombre)
			}

			for _, detalle := range ficha.Detalles {
				var insumo model.Insumo
				if err := tx.Set("gorm:query_option", "FOR UPDATE").
					First(&insumo, "id_insumo = ?", detalle.IDInsumo).Error; err != nil {
					return ErrNoEncontrado
				}
				consumo := detalle.Cantidad * item.Cantidad.Int()
				if insumo.StockActual < consumo {
					return fmt.Errorf("Stock insuficiente del insumo '%s'.", insumo.Nombre)
				}
				if err := tx.Model(&model.Insumo{}).
					Where("id_insumo = ?", insumo.ID).
					Update("stock_actual", insumo.StockActual-consumo).Error; err != nil {
					return err
				}
			}

			nuevoStock := producto.Stock + item.Cantidad.Int()
			if err := s.repo.UpdateStock(tx, producto.ID, nuevoStock); err != nil {
				return err
			}
			movimientos = append(movimientos, movimiento{
				producto: producto.Nombre,
				cantidad: item.Cantidad.Int(),
				stock:    nuevoStock,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, m := range movimientos {
		s.notificar(map[string]interface{}{
			"type":      "stock_update",
			"action":    "produccion",
			"producto":  m.producto,
			"cantidad":  m.cantidad,
			"new_stock": m.stock,
			"message":   fmt.Sprintf("Se produjeron %d unidades de '%s'", m.cantidad, m.producto),
		})
	}
	return nil
}

func (s *productoService) notificar(payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	go func() {
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
