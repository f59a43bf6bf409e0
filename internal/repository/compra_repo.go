package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type CompraRepository interface {
	FindAll() ([]model.Compra, error)
	FindByID(id uint) (*model.Compra, error)
}

type compraRepo struct {
	db *gorm.DB
}

func NewCompraRepo(db *gorm.DB) CompraRepository {
	return &compraRepo{db}
}

// Creation and deletion move insumo stock, so they live in the service inside
// a transaction; the repo only reads.

func (r *compraRepo) FindAll() ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.Preload("Proveedor").Preload("Detalles.Insumo").Order("id_compra").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) FindByID(id uint) (*model.Compra, error) {
	var c model.Compra
	err := r.db.Preload("Proveedor").Preload("Detalles.Insumo").First(&c, "id_compra = ?", id).Error
	return &c, err
}
