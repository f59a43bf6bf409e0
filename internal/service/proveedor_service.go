package service

import (
	"errors"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"
)

// ProveedorRequest holds the supplier form. nombre and asesor are people
// names (letters and diacritics only); contacto is a phone of 7+ digits.
type ProveedorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=4,letras"`
	Contacto string `json:"contacto" validate:"required,digitos,min=7"`
	Asesor   string `json:"asesor" validate:"required,min=4,letras"`
}

type ProveedorService interface {
	Listar() ([]model.Proveedor, error)
	Obtener(id uint) (*model.Proveedor, error)
	Crear(req *ProveedorRequest) (*model.Proveedor, error)
	Actualizar(id uint, req *ProveedorRequest) (*model.Proveedor, error)
	Eliminar(id uint) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Listar() ([]model.Proveedor, error) {
	return s.repo.FindAll()
}

func (s *proveedorService) Obtener(id uint) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return p, nil
}

func (s *proveedorService) Crear(req *ProveedorRequest) (*model.Proveedor, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	p := &model.Proveedor{
		Nombre:   req.Nombre,
		Contacto: req.Contacto,
		Asesor:   req.Asesor,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Actualizar(id uint, req *ProveedorRequest) (*model.Proveedor, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	p.Nombre = req.Nombre
	p.Contacto = req.Contacto
	p.Asesor = req.Asesor
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Eliminar(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.repo.TieneCompras(id)
	if err != nil {
		return err
	}
	if enUso {
		return errors.New("No se puede eliminar el proveedor ya que se encuentra asociado a una compra.")
	}
	return s.repo.Delete(id)
}
