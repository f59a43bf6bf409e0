package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type InsumoRepository interface {
	Create(i *model.Insumo) error
	FindAll() ([]model.Insumo, error)
	FindByID(id uint) (*model.Insumo, error)
	Update(i *model.Insumo) error
	Delete(id uint) error
	UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error
	EnUso(id uint) (bool, error)
}

type insumoRepo struct {
	db *gorm.DB
}

func NewInsumoRepo(db *gorm.DB) InsumoRepository {
	return &insumoRepo{db}
}

func (r *insumoRepo) Create(i *model.Insumo) error {
	return r.db.Create(i).Error
}

func (r *insumoRepo) FindAll() ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.Preload("Categoria").Order("id_insumo").Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) FindByID(id uint) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.Preload("Categoria").First(&i, "id_insumo = ?", id).Error
	return &i, err
}

func (r *insumoRepo) Update(i *model.Insumo) error {
	return r.db.Save(i).Error
}

func (r *insumoRepo) Delete(id uint) error {
	return r.db.Delete(&model.Insumo{}, "id_insumo = ?", id).Error
}

// UpdateStock runs inside the caller's transaction so stock movements stay
// atomic with the document that caused them.
func (r *insumoRepo) UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error {
	return tx.Model(&model.Insumo{}).
		Where("id_insumo = ?", id).
		Update("stock_actual", nuevoStock).Error
}

// EnUso backs the delete guard: an insumo referenced by a ficha técnica or a
// compra cannot be removed.
func (r *insumoRepo) EnUso(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&model.DetalleFichaTecnica{}).Where("id_insumo = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := r.db.Model(&model.DetalleCompra{}).Where("id_insumo = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
