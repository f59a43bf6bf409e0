package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(u *model.Usuario) error
	FindAll() ([]model.Usuario, error)
	FindByID(id uint) (*model.Usuario, error)
	FindByEmail(email string) (*model.Usuario, error)
	Update(u *model.Usuario) error
	Delete(id uint) error
	UpdateTokenVersion(id uint, version string) error
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db}
}

func (r *usuarioRepo) Create(u *model.Usuario) error {
	return r.db.Create(u).Error
}

func (r *usuarioRepo) FindAll() ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.Preload("Rol.Permisos").Order("id_usuario").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) FindByID(id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.Preload("Rol.Permisos").First(&u, "id_usuario = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.Preload("Rol.Permisos").First(&u, "email = ?", email).Error
	return &u, err
}

func (r *usuarioRepo) Update(u *model.Usuario) error {
	return r.db.Omit("Rol").Save(u).Error
}

func (r *usuarioRepo) Delete(id uint) error {
	return r.db.Delete(&model.Usuario{}, "id_usuario = ?", id).Error
}

// UpdateTokenVersion rotates the session marker; older tokens stop validating.
func (r *usuarioRepo) UpdateTokenVersion(id uint, version string) error {
	return r.db.Model(&model.Usuario{}).
		Where("id_usuario = ?", id).
		Update("token_version", version).Error
}
