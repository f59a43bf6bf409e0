package service

import (
	"errors"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"
)

type CategoriaInsumoRequest struct {
	Nombre      string `json:"nombre" validate:"required,letras"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type InsumoRequest struct {
	Nombre      string         `json:"nombre" validate:"required,letras"`
	StockActual model.Cantidad `json:"stock_actual"`
	IDCategoria uint           `json:"id_categoria" validate:"required"`
}

// InsumoService covers raw materials and their categories; the two screens
// share the same catalogue.
type InsumoService interface {
	ListarCategorias() ([]model.CategoriaInsumo, error)
	ObtenerCategoria(id uint) (*model.CategoriaInsumo, error)
	CrearCategoria(req *CategoriaInsumoRequest) (*model.CategoriaInsumo, error)
	ActualizarCategoria(id uint, req *CategoriaInsumoRequest) (*model.CategoriaInsumo, error)
	EliminarCategoria(id uint) error

	Listar() ([]model.Insumo, error)
	Obtener(id uint) (*model.Insumo, error)
	Crear(req *InsumoRequest) (*model.Insumo, error)
	Actualizar(id uint, req *InsumoRequest) (*model.Insumo, error)
	Eliminar(id uint) error
}

type insumoService struct {
	insumoRepo    repository.InsumoRepository
	categoriaRepo repository.CategoriaInsumoRepository
}

func NewInsumoService(iRepo repository.InsumoRepository, cRepo repository.CategoriaInsumoRepository) InsumoService {
	return &insumoService{
		insumoRepo:    iRepo,
		categoriaRepo: cRepo,
	}
}

func (s *insumoService) ListarCategorias() ([]model.CategoriaInsumo, error) {
	return s.categoriaRepo.FindAll()
}

func (s *insumoService) ObtenerCategoria(id uint) (*model.CategoriaInsumo, error) {
	c, err := s.categoriaRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return c, nil
}

func (s *insumoService) CrearCategoria(req *CategoriaInsumoRequest) (*model.CategoriaInsumo, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	c := &model.CategoriaInsumo{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.categoriaRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *insumoService) ActualizarCategoria(id uint, req *CategoriaInsumoRequest) (*model.CategoriaInsumo, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	c, err := s.categoriaRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	c.Nombre = req.Nombre
	c.Descripcion = req.Descripcion
	if err := s.categoriaRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *insumoService) EliminarCategoria(id uint) error {
	if _, err := s.categoriaRepo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.categoriaRepo.TieneInsumos(id)
	if err != nil {
		return err
	}
	if enUso {
		return errors.New("No se puede eliminar la categoría ya que tiene insumos asociados.")
	}
	return s.categoriaRepo.Delete(id)
}

func (s *insumoService) Listar() ([]model.Insumo, error) {
	return s.insumoRepo.FindAll()
}

func (s *insumoService) Obtener(id uint) (*model.Insumo, error) {
	i, err := s.insumoRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return i, nil
}

func (s *insumoService) Crear(req *InsumoRequest) (*model.Insumo, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	if _, err := s.categoriaRepo.FindByID(req.IDCategoria); err != nil {
		return nil, errCampos(validator.ErrorMap{"id_categoria": "La categoría seleccionada no existe."})
	}
	i := &model.Insumo{
		Nombre:      req.Nombre,
		StockActual: req.StockActual.Int(),
		IDCategoria: req.IDCategoria,
	}
	if err := s.insumoRepo.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *insumoService) Actualizar(id uint, req *InsumoRequest) (*model.Insumo, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	i, err := s.insumoRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	if _, err := s.categoriaRepo.FindByID(req.IDCategoria); err != nil {
		return nil, errCampos(validator.ErrorMap{"id_categoria": "La categoría seleccionada no existe."})
	}
	i.Nombre = req.Nombre
	i.StockActual = req.StockActual.Int()
	i.IDCategoria = req.IDCategoria
	if err := s.insumoRepo.Update(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *insumoService) Eliminar(id uint) error {
	if _, err := s.insumoRepo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.insumoRepo.EnUso(id)
	if err != nil {
		return err
	}
	if enUso {
		return errors.New("El insumo no se puede eliminar ya que se encuentra asociado a una categoría de insumo y/o a una ficha técnica.")
	}
	return s.insumoRepo.Delete(id)
}
