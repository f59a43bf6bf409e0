package service

import (
	"errors"
	"fmt"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"

	"gorm.io/gorm"
)

type FichaTecnicaRequest struct {
	IDProducto  uint                  `json:"id_producto"`
	Descripcion string                `json:"descripcion"`
	Insumos     string                `json:"insumos"`
	Detalles    []DetalleFichaRequest `json:"detalles"`
}

type DetalleFichaRequest struct {
	IDInsumo uint           `json:"id_insumo"`
	Cantidad model.Cantidad `json:"cantidad"`
}

type FichaTecnicaService interface {
	Listar() ([]model.FichaTecnica, error)
	Obtener(id uint) (*model.FichaTecnica, error)
	Crear(req *FichaTecnicaRequest) (*model.FichaTecnica, error)
	Actualizar(id uint, req *FichaTecnicaRequest) (*model.FichaTecnica, error)
	Eliminar(id uint) error
}

type fichaService struct {
	repo         repository.FichaTecnicaRepository
	productoRepo repository.ProductoRepository
	insumoRepo   repository.InsumoRepository
}

func NewFichaTecnicaService(repo repository.FichaTecnicaRepository, pRepo repository.ProductoRepository, iRepo repository.InsumoRepository) FichaTecnicaService {
	return &fichaService{
		repo:         repo,
		productoRepo: pRepo,
		insumoRepo:   iRepo,
	}
}

func (s *fichaService) Listar() ([]model.FichaTecnica, error) {
	return s.repo.FindAll()
}

func (s *fichaService) Obtener(id uint) (*model.FichaTecnica, error) {
	f, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return f, nil
}

// ValidarFicha checks the recipe form, keying row errors insumo_i / cantidad_i.
func ValidarFicha(req *FichaTecnicaRequest) validator.ErrorMap {
	errs := validator.ErrorMap{}
	if req.IDProducto == 0 {
		errs.Agregar("id_producto", "El campo id_producto es obligatorio.")
	}
	if req.Descripcion == "" {
		errs.Agregar("descripcion", "El campo descripcion es obligatorio.")
	}
	if req.Insumos == "" {
		errs.Agregar("insumos", "El campo insumos es obligatorio.")
	}
	if len(req.Detalles) == 0 {
		errs.Agregar("detalles", "Completa todos los campos antes de agregar.")
	}
	for i, d := range req.Detalles {
		if d.IDInsumo == 0 {
			errs.Agregar(fmt.Sprintf("insumo_%d", i), "Seleccione un insumo.")
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

func tieneInsumosDuplicadosFicha(detalles []DetalleFichaRequest) bool {
	vistos := map[uint]bool{}
	for _, d := range detalles {
		if vistos[d.IDInsumo] {
			return true
		}
		vistos[d.IDInsumo] = true
	}
	return false
}

func (s *fichaService) validar(req *FichaTecnicaRequest) error {
	if errs := ValidarFicha(req); errs != nil {
		return errCampos(errs)
	}
	if tieneInsumosDuplicadosFicha(req.Detalles) {
		return errors.New("No se pueden agregar insumos duplicados.")
	}
	if _, err := s.productoRepo.FindByID(req.IDProducto); err != nil {
		return errCampos(validator.ErrorMap{"id_producto": "El producto seleccionado no existe."})
	}
	for i, d := range req.Detalles {
		if _, err := s.insumoRepo.FindByID(d.IDInsumo); err != nil {
			return errCampos(validator.ErrorMap{
				fmt.Sprintf("insumo_%d", i): "El insumo seleccionado no existe.",
			})
		}
	}
	return nil
}

func (s *fichaService) Crear(req *FichaTecnicaRequest) (*model.FichaTecnica, error) {
	if err := s.validar(req); err != nil {
		return nil, err
	}
	// One recipe per producto
	if _, err := s.repo.FindByProducto(req.IDProducto); err == nil {
		return nil, errors.New("El producto ya tiene una ficha técnica.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ficha := &model.FichaTecnica{
		IDProducto:  req.IDProducto,
		Descripcion: req.Descripcion,
		Insumos:     req.Insumos,
	}
	for _, d := range req.Detalles {
		ficha.Detalles = append(ficha.Detalles, model.DetalleFichaTecnica{
			IDInsumo: d.IDInsumo,
			Cantidad: d.Cantidad.Int(),
		})
	}
	if err := s.repo.Create(ficha); err != nil {
		return nil, err
	}
	return s.Obtener(ficha.ID)
}

func (s *fichaService) Actualizar(id uint, req *FichaTecnicaRequest) (*model.FichaTecnica, error) {
	ficha, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	if err := s.validar(req); err != nil {
		return nil, err
	}
	if otra, err := s.repo.FindByProducto(req.IDProducto); err == nil && otra.ID != ficha.ID {
		return nil, errors.New("El producto ya tiene una ficha técnica.")
	}

	ficha.IDProducto = req.IDProducto
	ficha.Descripcion = req.Descripcion
	ficha.Insumos = req.Insumos
	if err := s.repo.Update(ficha); err != nil {
		return nil, err
	}
	detalles := make([]model.DetalleFichaTecnica, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		detalles = append(detalles, model.DetalleFichaTecnica{
			IDInsumo: d.IDInsumo,
			Cantidad: d.Cantidad.Int(),
		})
	}
	if err := s.repo.ReemplazarDetalles(ficha, detalles); err != nil {
		return nil, err
	}
	return s.Obtener(ficha.ID)
}

func (s *fichaService) Eliminar(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	return s.repo.Delete(id)
}
