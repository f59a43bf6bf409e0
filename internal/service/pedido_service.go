package service

import (
	"errors"
	"fmt"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"

	"github.com/shopspring/decimal"
)

type PedidoRequest struct {
	IDCliente    uint                   `json:"id_cliente"`
	NumeroPedido string                 `json:"numero_pedido"`
	FechaEntrega model.Fecha            `json:"fecha_entrega"`
	FechaPago    *model.Fecha           `json:"fecha_pago"`
	Estado       string                 `json:"estado"`
	Pagado       bool                   `json:"pagado"`
	Detalles     []DetallePedidoRequest `json:"detalles"`
}

type DetallePedidoRequest struct {
	IDProducto uint           `json:"id_producto"`
	Cantidad   model.Cantidad `json:"cantidad"`
}

func (d DetallePedidoRequest) Producto() uint { return d.IDProducto }

// PedidoFiltros narrows the list to pedidos delivered on a calendar day with
// the given payment flag (the delivery-date probe).
type PedidoFiltros struct {
	FechaEntrega string
	Pagado       *bool
}

type PedidoService interface {
	Listar(filtros PedidoFiltros) ([]model.Pedido, error)
	Obtener(id uint) (*model.Pedido, error)
	Crear(req *PedidoRequest) (*model.Pedido, error)
	Actualizar(id uint, req *PedidoRequest) (*model.Pedido, error)
	Eliminar(id uint) error
}

type pedidoService struct {
	repo         repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
}

func NewPedidoService(repo repository.PedidoRepository, cRepo repository.ClienteRepository, pRepo repository.ProductoRepository) PedidoService {
	return &pedidoService{
		repo:         repo,
		clienteRepo:  cRepo,
		productoRepo: pRepo,
	}
}

func (s *pedidoService) Listar(filtros PedidoFiltros) ([]model.Pedido, error) {
	if filtros.FechaEntrega != "" {
		pagado := true
		if filtros.Pagado != nil {
			pagado = *filtros.Pagado
		}
		return s.repo.FindByEntrega(filtros.FechaEntrega, pagado)
	}
	return s.repo.FindAll()
}

func (s *pedidoService) Obtener(id uint) (*model.Pedido, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return p, nil
}

// ValidarPedido is the full rule set for the order form: header fields, a
// non-empty detalle, and per-row checks keyed producto_i / cantidad_i.
func ValidarPedido(req *PedidoRequest) validator.ErrorMap {
	errs := validator.ErrorMap{}
	if req.IDCliente == 0 {
		errs.Agregar("id_cliente", "El campo id_cliente es obligatorio.")
	}
	if req.NumeroPedido == "" {
		errs.Agregar("numero_pedido", "El campo numero_pedido es obligatorio.")
	}
	if req.FechaEntrega.IsZero() {
		errs.Agregar("fecha_entrega", "El campo fecha_entrega es obligatorio.")
	}
	if req.Estado == "" {
		errs.Agregar("estado", "El campo estado es obligatorio.")
	}
	if len(req.Detalles) == 0 {
		errs.Agregar("detalles", "Debe agregar al menos un producto al pedido.")
	}
	for i, d := range req.Detalles {
		if d.IDProducto == 0 {
			errs.Agregar(fmt.Sprintf("producto_%d", i), "Seleccione un producto.")
		}
		if d.Cantidad.Int() <= 0 {
			errs.Agregar(fmt.Sprintf("cantidad_%d", i), "La cantidad debe ser mayor que 0.")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// armar builds the persisted pedido from the request. fecha_pago only
// survives when the pedido is pagado; otherwise it travels as null.
func (s *pedidoService) armar(req *PedidoRequest) (*model.Pedido, error) {
	if errs := ValidarPedido(req); errs != nil {
		return nil, errCampos(errs)
	}
	if TieneProductosDuplicados(req.Detalles) {
		return nil, errors.New("No se pueden seleccionar productos duplicados.")
	}
	if _, err := s.clienteRepo.FindByID(req.IDCliente); err != nil {
		return nil, errCampos(validator.ErrorMap{"id_cliente": "El cliente seleccionado no existe."})
	}

	var fechaPago *model.Fecha
	if req.Pagado && req.FechaPago != nil && !req.FechaPago.IsZero() {
		fechaPago = req.FechaPago
	}

	pedido := &model.Pedido{
		IDCliente:    req.IDCliente,
		NumeroPedido: req.NumeroPedido,
		FechaEntrega: req.FechaEntrega,
		FechaPago:    fechaPago,
		Estado:       req.Estado,
		Pagado:       req.Pagado,
	}
	total := decimal.Zero
	for _, d := range req.Detalles {
		producto, err := s.productoRepo.FindByID(d.IDProducto)
		if err != nil {
			return nil, errCampos(validator.ErrorMap{"detalles": "Uno de los productos seleccionados no existe."})
		}
		total = total.Add(producto.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad.Int()))))
		pedido.Detalles = append(pedido.Detalles, model.DetallePedido{
			IDProducto: d.IDProducto,
			Cantidad:   d.Cantidad.Int(),
		})
	}
	pedido.Total = total
	return pedido, nil
}

func (s *pedidoService) Crear(req *PedidoRequest) (*model.Pedido, error) {
	pedido, err := s.armar(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(pedido); err != nil {
		return nil, err
	}
	return s.Obtener(pedido.ID)
}

func (s *pedidoService) Actualizar(id uint, req *PedidoRequest) (*model.Pedido, error) {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	pedido, err := s.armar(req)
	if err != nil {
		return nil, err
	}
	pedido.ID = existente.ID
	pedido.CreatedAt = existente.CreatedAt
	detalles := pedido.Detalles
	pedido.Detalles = nil
	if err := s.repo.Update(pedido); err != nil {
		return nil, err
	}
	if err := s.repo.ReemplazarDetalles(pedido, detalles); err != nil {
		return nil, err
	}
	return s.Obtener(pedido.ID)
}

func (s *pedidoService) Eliminar(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	return s.repo.Delete(id)
}
