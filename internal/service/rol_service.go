package service

import (
	"errors"
	"strings"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"

	"gorm.io/gorm"
)

// RolRequest carries the role form: a name plus the checked permiso ids.
type RolRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Permisos []uint `json:"permisos"`
}

type RolService interface {
	Listar() ([]model.Rol, error)
	Obtener(id uint) (*model.Rol, error)
	Crear(req *RolRequest) (*model.Rol, error)
	Actualizar(id uint, req *RolRequest) (*model.Rol, error)
	Eliminar(id uint) error
	ListarPermisos() ([]model.Permiso, error)
}

type rolService struct {
	rolRepo     repository.RolRepository
	permisoRepo repository.PermisoRepository
}

func NewRolService(rolRepo repository.RolRepository, permisoRepo repository.PermisoRepository) RolService {
	return &rolService{
		rolRepo:     rolRepo,
		permisoRepo: permisoRepo,
	}
}

func (s *rolService) Listar() ([]model.Rol, error) {
	return s.rolRepo.FindAll()
}

func (s *rolService) Obtener(id uint) (*model.Rol, error) {
	rol, err := s.rolRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return rol, nil
}

func (s *rolService) ListarPermisos() ([]model.Permiso, error) {
	return s.permisoRepo.FindAll()
}

// resolverPermisos maps the checked ids to permisos and enforces the
// protected-role rule: administrador always keeps the Roles permiso, no
// matter what the form unchecked.
func (s *rolService) resolverPermisos(nombreRol string, ids []uint) ([]model.Permiso, error) {
	permisos, err := s.permisoRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(permisos) != len(ids) {
		return nil, errCampos(validator.ErrorMap{"permisos": "Uno de los permisos seleccionados no existe."})
	}
	if !strings.EqualFold(nombreRol, model.RolAdministrador) {
		return permisos, nil
	}
	for _, p := range permisos {
		if strings.EqualFold(p.Nombre, model.PermisoRoles) {
			return permisos, nil
		}
	}
	roles, err := s.permisoRepo.FindByNombre(model.PermisoRoles)
	if err != nil {
		return nil, err
	}
	return append(permisos, *roles), nil
}

func (s *rolService) Crear(req *RolRequest) (*model.Rol, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	if _, err := s.rolRepo.FindByNombre(req.Nombre); err == nil {
		return nil, errors.New("Ya existe un rol con ese nombre.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	permisos, err := s.resolverPermisos(req.Nombre, req.Permisos)
	if err != nil {
		return nil, err
	}
	rol := &model.Rol{Nombre: req.Nombre}
	if err := s.rolRepo.Create(rol, permisos); err != nil {
		return nil, err
	}
	return s.Obtener(rol.ID)
}

func (s *rolService) Actualizar(id uint, req *RolRequest) (*model.Rol, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errCampos(errs)
	}
	rol, err := s.rolRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	if otro, err := s.rolRepo.FindByNombre(req.Nombre); err == nil && otro.ID != rol.ID {
		return nil, errors.New("Ya existe un rol con ese nombre.")
	}
	permisos, err := s.resolverPermisos(req.Nombre, req.Permisos)
	if err != nil {
		return nil, err
	}
	rol.Nombre = req.Nombre
	if err := s.rolRepo.Update(rol); err != nil {
		return nil, err
	}
	if err := s.rolRepo.ReemplazarPermisos(rol, permisos); err != nil {
		return nil, err
	}
	return s.Obtener(rol.ID)
}

func (s *rolService) Eliminar(id uint) error {
	rol, err := s.rolRepo.FindByID(id)
	if err != nil {
		return noEncontrado(err)
	}
	enUso, err := s.rolRepo.TieneUsuarios(id)
	if err != nil {
		return err
	}
	if enUso || len(rol.Permisos) > 0 {
		return errors.New("No se puede eliminar un rol ya que este se encuentra asociado a un usuario y/o tiene permisos asignados.")
	}
	return s.rolRepo.Delete(id)
}
