package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Create(p *model.Proveedor) error
	FindAll() ([]model.Proveedor, error)
	FindByID(id uint) (*model.Proveedor, error)
	Update(p *model.Proveedor) error
	Delete(id uint) error
	TieneCompras(id uint) (bool, error)
}

type proveedorRepo struct {
	db *gorm.DB
}

func NewProveedorRepo(db *gorm.DB) ProveedorRepository {
	return &proveedorRepo{db}
}

func (r *proveedorRepo) Create(p *model.Proveedor) error {
	return r.db.Create(p).Error
}

func (r *proveedorRepo) FindAll() ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.Order("id_proveedor").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) FindByID(id uint) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.First(&p, "id_proveedor = ?", id).Error
	return &p, err
}

func (r *proveedorRepo) Update(p *model.Proveedor) error {
	return r.db.Save(p).Error
}

func (r *proveedorRepo) Delete(id uint) error {
	return r.db.Delete(&model.Proveedor{}, "id_proveedor = ?", id).Error
}

// TieneCompras backs the delete guard: a proveedor referenced by a compra
// cannot be removed.
func (r *proveedorRepo) TieneCompras(id uint) (bool, error) {
	var n int64
	err := r.db.Model(&model.Compra{}).Where("id_proveedor = ?", id).Count(&n).Error
	return n > 0, err
}
