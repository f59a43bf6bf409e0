package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	Create(rol *model.Rol, permisos []model.Permiso) error
	FindAll() ([]model.Rol, error)
	FindByID(id uint) (*model.Rol, error)
	FindByNombre(nombre string) (*model.Rol, error)
	Update(rol *model.Rol) error
	ReemplazarPermisos(rol *model.Rol, permisos []model.Permiso) error
	Delete(id uint) error
	TieneUsuarios(id uint) (bool, error)
}

type rolRepo struct {
	db *gorm.DB
}

func NewRolRepo(db *gorm.DB) RolRepository {
	return &rolRepo{db}
}

func (r *rolRepo) Create(rol *model.Rol, permisos []model.Permiso) error {
	rol.Permisos = permisos
	return r.db.Create(rol).Error
}

func (r *rolRepo) FindAll() ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.Preload("Permisos").Order("id_rol").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(id uint) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.Preload("Permisos").First(&rol, "id_rol = ?", id).Error
	return &rol, err
}

func (r *rolRepo) FindByNombre(nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.Preload("Permisos").First(&rol, "lower(nombre) = lower(?)", nombre).Error
	return &rol, err
}

func (r *rolRepo) Update(rol *model.Rol) error {
	return r.db.Omit("Permisos").Save(rol).Error
}

func (r *rolRepo) ReemplazarPermisos(rol *model.Rol, permisos []model.Permiso) error {
	return r.db.Model(rol).Association("Permisos").Replace(permisos)
}

func (r *rolRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rol model.Rol
		if err := tx.First(&rol, "id_rol = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&rol).Association("Permisos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&rol).Error
	})
}

func (r *rolRepo) TieneUsuarios(id uint) (bool, error) {
	var n int64
	err := r.db.Model(&model.Usuario{}).Where("id_rol = ?", id).Count(&n).Error
	return n > 0, err
}
