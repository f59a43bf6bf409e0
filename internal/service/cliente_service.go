package service

import (
	"errors"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"
)

type ClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=3"`
	Contacto string `json:"contacto" validate:"required,digitos,min=7"`
}

type ClienteService interface {
	Listar() ([]model.Cliente, error)
	Obtener(id uint) (*model.Cliente, error)
	Crear(req *ClienteRequest) (*model.Cliente, error)
	Actualizar(id uint, req *ClienteRequest) (*model.Cliente, error)
	Eliminar(id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Listar() ([]model.Cliente, error) {
	return s.repo.FindAll()
}

func (s *clienteService) Obtener(id uint) (*model.Cliente, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return c, nil
}

func (s *clienteService) Crear(req *ClienteRequest) (*model.Cliente, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	c := &model.Cliente{Nombre: req.Nombre, Contacto: req.Contacto}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Actualizar(id uint, req *ClienteRequest) (*model.Cliente, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	c.Nombre = req.Nombre
	c.Contacto = req.Contacto
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Eliminar(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.repo.EnUso(id)
	if err != nil {
		return err
	}
	if enUso {
		return errors.New("El cliente no se puede eliminar porque se encuentra asociado a una venta o pedido.")
	}
	return s.repo.Delete(id)
}
