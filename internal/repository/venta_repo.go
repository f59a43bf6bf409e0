package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type VentaRepository interface {
	FindAll() ([]model.Venta, error)
	FindByID(id uint) (*model.Venta, error)
	UpdateEstado(id uint, estado string) error
}

type ventaRepo struct {
	db *gorm.DB
}

func NewVentaRepo(db *gorm.DB) VentaRepository {
	return &ventaRepo{db}
}

// Creation and deletion move producto stock, so they live in the service
// inside a transaction; the repo covers reads and the estado transition.

func (r *ventaRepo) FindAll() ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.Preload("Cliente").Preload("Detalles.Producto").Order("id_venta").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByID(id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.Preload("Cliente").Preload("Detalles.Producto").First(&v, "id_venta = ?", id).Error
	return &v, err
}

func (r *ventaRepo) UpdateEstado(id uint, estado string) error {
	res := r.db.Model(&model.Venta{}).Where("id_venta = ?", id).Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
