package service

import (
	"errors"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/validator"

	"gorm.io/gorm"
)

// RegistroRequest creates an operator. Note the password floor here is 5,
// one more than login asks for; the original console shipped that way and
// existing accounts depend on it.
type RegistroRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IDRol    uint   `json:"id_rol" validate:"required"`
}

// ActualizarUsuarioRequest edits an operator; an empty password keeps the
// current one.
type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	IDRol    uint   `json:"id_rol" validate:"required"`
}

type UsuarioService interface {
	Listar() ([]model.Usuario, error)
	Obtener(id uint) (*model.Usuario, error)
	Registrar(req *RegistroRequest) (*model.Usuario, error)
	Actualizar(id uint, req *ActualizarUsuarioRequest) (*model.Usuario, error)
	Eliminar(id uint) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
}

func NewUsuarioService(uRepo repository.UsuarioRepository, rRepo repository.RolRepository) UsuarioService {
	return &usuarioService{
		usuarioRepo: uRepo,
		rolRepo:     rRepo,
	}
}

func (s *usuarioService) Listar() ([]model.Usuario, error) {
	return s.usuarioRepo.FindAll()
}

func (s *usuarioService) Obtener(id uint) (*model.Usuario, error) {
	u, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	return u, nil
}

func (s *usuarioService) Registrar(req *RegistroRequest) (*model.Usuario, error) {
	errs := validator.ValidateStruct(req)
	if errs == nil {
		errs = validator.ErrorMap{}
	}
	if _, ya := errs["password"]; !ya && len(req.Password) < 5 {
		errs.Agregar("password", "La contraseña debe tener al menos 5 cáracteres.")
	}
	if len(errs) > 0 {
		return nil, errCampos(errs)
	}
	if _, err := s.usuarioRepo.FindByEmail(req.Email); err == nil {
		return nil, errors.New("El correo ya se encuentra registrado.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.rolRepo.FindByID(req.IDRol); err != nil {
		return nil, errCampos(validator.ErrorMap{"id_rol": "El rol seleccionado no existe."})
	}

	u := &model.Usuario{
		Nombre: req.Nombre,
		Email:  req.Email,
		IDRol:  req.IDRol,
	}
	if err := u.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return s.Obtener(u.ID)
}

func (s *usuarioService) Actualizar(id uint, req *ActualizarUsuarioRequest) (*model.Usuario, error) {
	errs := validator.ValidateStruct(req)
	if errs == nil {
		errs = validator.ErrorMap{}
	}
	if req.Password != "" && len(req.Password) < 5 {
		errs.Agregar("password", "La contraseña debe tener al menos 5 cáracteres.")
	}
	if len(errs) > 0 {
		return nil, errCampos(errs)
	}
	u, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		return nil, noEncontrado(err)
	}
	if otro, err := s.usuarioRepo.FindByEmail(req.Email); err == nil && otro.ID != u.ID {
		return nil, errors.New("El correo ya se encuentra registrado.")
	}
	if _, err := s.rolRepo.FindByID(req.IDRol); err != nil {
		return nil, errCampos(validator.ErrorMap{"id_rol": "El rol seleccionado no existe."})
	}

	u.Nombre = req.Nombre
	u.Email = req.Email
	u.IDRol = req.IDRol
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}
	if err := s.usuarioRepo.Update(u); err != nil {
		return nil, err
	}
	return s.Obtener(u.ID)
}

func (s *usuarioService) Eliminar(id uint) error {
	if _, err := s.usuarioRepo.FindByID(id); err != nil {
		return noEncontrado(err)
	}
	return s.usuarioRepo.Delete(id)
}
