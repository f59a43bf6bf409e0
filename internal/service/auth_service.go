package service

import (
	"strings"

	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/pkg/jwt"
	"delicrem-api/pkg/validator"

	"github.com/google/uuid"
)

// LoginRequest mirrors the sign-in form. Its password floor is 4, one less
// than registration; accounts created before the registration rule tightened
// still have to be able to log in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Login(req *LoginRequest) (string, *model.Usuario, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewAuthService(usuarioRepo repository.UsuarioRepository) AuthService {
	return &authService{usuarioRepo: usuarioRepo}
}

// ValidarLogin reproduces the sign-in form rules.
func ValidarLogin(req *LoginRequest) validator.ErrorMap {
	errs := validator.ErrorMap{}
	switch {
	case req.Email == "":
		errs.Agregar("email", "El correo es requerido.")
	case len(req.Email) < 4:
		errs.Agregar("email", "El correo debe tener al menos 4 caracteres.")
	case !strings.Contains(req.Email, "@"):
		errs.Agregar("email", "El correo debe contener un @ para ser válido.")
	}
	switch {
	case req.Password == "":
		errs.Agregar("password", "La contraseña es requerida.")
	case len(req.Password) < 4:
		errs.Agregar("password", "La contraseña debe tener al menos 4 caracteres.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Login checks credentials, rotates the token version so older sessions drop,
// and returns a signed token plus the usuario with rol and permisos loaded.
func (s *authService) Login(req *LoginRequest) (string, *model.Usuario, error) {
	if errs := ValidarLogin(req); errs != nil {
		return "", nil, errCampos(errs)
	}

	usuario, err := s.usuarioRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, ErrCredenciales
	}
	if !usuario.CheckPassword(req.Password) {
		return "", nil, ErrCredenciales
	}

	version := uuid.NewString()
	if err := s.usuarioRepo.UpdateTokenVersion(usuario.ID, version); err != nil {
		return "", nil, err
	}
	usuario.TokenVersion = version

	var rol string
	var permisos []string
	if usuario.Rol != nil {
		rol = usuario.Rol.Nombre
		for _, p := range usuario.Rol.Permisos {
			permisos = append(permisos, p.Nombre)
		}
	}

	token, err := jwt.GenerateToken(usuario.ID, usuario.Email, usuario.Nombre, rol, permisos, version)
	if err != nil {
		return "", nil, err
	}
	return token, usuario, nil
}
